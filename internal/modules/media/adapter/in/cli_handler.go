package in

import (
	"context"

	"chestdef/internal/modules/media/dto"
	mediain "chestdef/internal/modules/media/port/in"
)

type CLIHandler struct {
	usecase mediain.Usecase
}

func NewCLIHandler(usecase mediain.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Classify(url string) dto.SourceOutput {
	return h.usecase.Classify(url)
}

func (h CLIHandler) Open(ctx context.Context, url string) (dto.SourceOutput, error) {
	return h.usecase.Open(ctx, url)
}
