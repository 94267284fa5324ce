package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/google/uuid"
)

const defaultPaletteName = "My Palette"

type PaletteService interface {
	// List 一个调色板都没有的时候会先建一个默认的
	List(ctx context.Context) ([]domain.Palette, error)
	Create(ctx context.Context, name string) (domain.Palette, error)
	Rename(ctx context.Context, id, name string) (domain.Palette, error)
	Delete(ctx context.Context, id string) error
	AddColor(ctx context.Context, id, hex string) (domain.Palette, error)
	RemoveColor(ctx context.Context, id string, index int) (domain.Palette, error)
	// ExportCSS 返回文件名和 CSS 变量内容
	ExportCSS(ctx context.Context, id string) (string, string, error)
}

type paletteService struct {
	repo repository.PaletteRepository
	l    logger.Logger
}

func NewPaletteService(repo repository.PaletteRepository, l logger.Logger) PaletteService {
	return &paletteService{repo: repo, l: l}
}

func (s *paletteService) List(ctx context.Context) ([]domain.Palette, error) {
	ps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(ps) > 0 {
		return ps, nil
	}
	p := domain.Palette{Id: uuid.New().String(), Name: defaultPaletteName, Colors: []string{}}
	if err = s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return []domain.Palette{p}, nil
}

func (s *paletteService) Create(ctx context.Context, name string) (domain.Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		ps, err := s.repo.FindAll(ctx)
		if err != nil {
			return domain.Palette{}, err
		}
		name = fmt.Sprintf("Palette %d", len(ps)+1)
	}
	p := domain.Palette{Id: uuid.New().String(), Name: name, Colors: []string{}}
	if err := s.repo.Create(ctx, p); err != nil {
		return domain.Palette{}, err
	}
	return p, nil
}

func (s *paletteService) Rename(ctx context.Context, id, name string) (domain.Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Palette{}, errs.ErrorMissingParameter("palette name is required")
	}
	return s.modify(ctx, id, func(p *domain.Palette) error {
		p.Name = name
		return nil
	})
}

func (s *paletteService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPaletteNotFound) {
		return errs.ErrorPaletteNotFound("palette %s not found", id)
	}
	return err
}

func (s *paletteService) AddColor(ctx context.Context, id, hex string) (domain.Palette, error) {
	hex, err := NormalizeHex(hex)
	if err != nil {
		return domain.Palette{}, err
	}
	return s.modify(ctx, id, func(p *domain.Palette) error {
		p.Colors = append(p.Colors, hex)
		return nil
	})
}

func (s *paletteService) RemoveColor(ctx context.Context, id string, index int) (domain.Palette, error) {
	return s.modify(ctx, id, func(p *domain.Palette) error {
		if index < 0 || index >= len(p.Colors) {
			return errs.ErrorInvalidParameter("color index %d out of range", index)
		}
		p.Colors = append(p.Colors[:index], p.Colors[index+1:]...)
		return nil
	})
}

var (
	whitespaceRegexp   = regexp.MustCompile(`\s+`)
	unsafeFilenameRune = regexp.MustCompile(`[^a-z0-9-]`)
)

func (s *paletteService) ExportCSS(ctx context.Context, id string) (string, string, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return "", "", err
	}
	lines := make([]string, 0, len(p.Colors))
	for i, c := range p.Colors {
		lines = append(lines, fmt.Sprintf("  --color-%d: %s;", i+1, c))
	}
	content := ":root {\n" + strings.Join(lines, "\n") + "\n}"
	return cssFilename(p.Name), content, nil
}

// cssFilename 只保留 [a-z0-9-]，名字全被过滤掉时用 palette.css
func cssFilename(name string) string {
	base := whitespaceRegexp.ReplaceAllString(strings.ToLower(name), "-")
	base = unsafeFilenameRune.ReplaceAllString(base, "")
	if base == "" {
		base = "palette"
	}
	return base + ".css"
}

func (s *paletteService) get(ctx context.Context, id string) (domain.Palette, error) {
	p, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrPaletteNotFound) {
		return domain.Palette{}, errs.ErrorPaletteNotFound("palette %s not found", id)
	}
	return p, err
}

func (s *paletteService) modify(ctx context.Context, id string, fn func(p *domain.Palette) error) (domain.Palette, error) {
	var fnErr error
	p, err := s.repo.Modify(ctx, id, func(p *domain.Palette) error {
		fnErr = fn(p)
		return fnErr
	})
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, repository.ErrPaletteNotFound):
		return domain.Palette{}, errs.ErrorPaletteNotFound("palette %s not found", id)
	case fnErr != nil:
		return domain.Palette{}, fnErr
	default:
		s.l.Error("更新调色板失败", logger.String("paletteId", id), logger.Error(err))
		return domain.Palette{}, err
	}
}
