package out

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"chestdef/internal/modules/catalog/domain"
	catalogout "chestdef/internal/modules/catalog/port/out"
	"chestdef/internal/platform/markdown"
)

//go:embed content
var embedded embed.FS

// FSContent reads exercises/*.md, workouts.yaml and translations.yaml from
// a file system.
type FSContent struct {
	fsys fs.FS
}

// NewEmbeddedContent serves the content compiled into the binary.
func NewEmbeddedContent() catalogout.ContentSource {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return &FSContent{fsys: sub}
}

func NewFSContent(fsys fs.FS) catalogout.ContentSource {
	return &FSContent{fsys: fsys}
}

type exerciseMeta struct {
	ID               string      `yaml:"id"`
	Icon             string      `yaml:"icon"`
	Category         string      `yaml:"category"`
	Name             domain.Text `yaml:"name"`
	ShortDescription domain.Text `yaml:"short_description"`
	Objective        domain.Text `yaml:"objective"`
	QuickFix         domain.Text `yaml:"quick_fix"`
	CompareTip       domain.Text `yaml:"compare_tip"`
	VideoURL         string      `yaml:"video_url"`
}

func (c *FSContent) Exercises(_ context.Context) ([]domain.Exercise, error) {
	matches, err := fs.Glob(c.fsys, "exercises/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob exercises: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Exercise, 0, len(matches))
	for _, p := range matches {
		raw, readErr := fs.ReadFile(c.fsys, p)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", p, readErr)
		}
		doc, parseErr := markdown.Parse(string(raw))
		if parseErr != nil {
			return nil, fmt.Errorf("parse %s: %w", p, parseErr)
		}
		var meta exerciseMeta
		if err := doc.Decode(&meta); err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		if meta.ID == "" {
			meta.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}
		steps := map[string][]string{}
		for locale, section := range doc.Sections() {
			if items := markdown.ListItems(section); len(items) > 0 {
				steps[locale] = items
			}
		}
		out = append(out, domain.Exercise{
			ID:               meta.ID,
			Icon:             meta.Icon,
			Category:         meta.Category,
			Name:             meta.Name,
			ShortDescription: meta.ShortDescription,
			Objective:        meta.Objective,
			QuickFix:         meta.QuickFix,
			CompareTip:       meta.CompareTip,
			Steps:            steps,
			VideoURL:         meta.VideoURL,
		})
	}
	return out, nil
}

type workoutsFile struct {
	Workouts []struct {
		ID        string      `yaml:"id"`
		Title     domain.Text `yaml:"title"`
		Frequency string      `yaml:"frequency"`
		Sets      int         `yaml:"sets"`
		Exercises []string    `yaml:"exercises"`
	} `yaml:"workouts"`
}

func (c *FSContent) Workouts(_ context.Context) ([]domain.Workout, error) {
	var file workoutsFile
	if err := c.readYAML("workouts.yaml", &file); err != nil {
		return nil, err
	}
	out := make([]domain.Workout, 0, len(file.Workouts))
	for _, w := range file.Workouts {
		out = append(out, domain.Workout{
			ID:        w.ID,
			Title:     w.Title,
			Frequency: w.Frequency,
			Sets:      w.Sets,
			Exercises: w.Exercises,
		})
	}
	return out, nil
}

func (c *FSContent) Translations(_ context.Context) (domain.Translations, error) {
	var file struct {
		Translations domain.Translations `yaml:"translations"`
	}
	if err := c.readYAML("translations.yaml", &file); err != nil {
		return nil, err
	}
	if file.Translations == nil {
		return domain.Translations{}, nil
	}
	return file.Translations, nil
}

func (c *FSContent) readYAML(name string, out any) error {
	raw, err := fs.ReadFile(c.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
