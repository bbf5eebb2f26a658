package dto

type CalculateInput struct {
	Sex        string
	Age        float64
	WeightKg   float64
	HeightCm   float64
	Multiplier float64
}

type LevelOutput struct {
	Key        string
	Multiplier float64
	TDEE       int
}

type CalculateOutput struct {
	BMR      float64
	TDEE     int
	Cutting  int
	ProteinG float64
	FatG     int
	CarbsG   int
	Levels   []LevelOutput
}
