package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func tierDir(t domain.DifficultyTier) string {
	switch t {
	case domain.TierTrivial, domain.TierEasy, domain.TierMedium,
		domain.TierHard, domain.TierExpert, domain.TierNightmare:
		return t.String()
	default:
		return domain.TierMedium.String()
	}
}

func (s *FS) pathFor(id string, t domain.DifficultyTier) string {
	return filepath.Join(s.dir, tierDir(t), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, lvl *domain.Level) error {
	if lvl == nil || lvl.ID == "" {
		return errors.New("invalid level: missing ID")
	}
	// Levels are bucketed by tier directory under s.dir
	target := s.pathFor(lvl.ID, lvl.Tier)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(lvl)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Level, error) {
	type cand struct {
		path   string
		tier   domain.DifficultyTier
		legacy bool
	}
	var candidates []cand
	for t := domain.TierTrivial; t <= domain.TierNightmare; t++ {
		candidates = append(candidates, cand{filepath.Join(s.dir, tierDir(t), id+".json"), t, false})
	}
	// legacy flat layout
	candidates = append(candidates, cand{filepath.Join(s.dir, id+".json"), domain.TierTrivial, true})

	var chosen *cand
	var data []byte
	for i := range candidates {
		c := candidates[i]
		if _, statErr := os.Stat(c.path); statErr == nil {
			b, err := os.ReadFile(c.path)
			if err != nil {
				return nil, err
			}
			data = b
			chosen = &c
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Level
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// If the tier is missing, infer it from the folder we loaded from.
	if out.Tier == 0 && chosen != nil && !chosen.legacy {
		out.Tier = chosen.tier
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.LevelMeta, error) {
	type m struct {
		ID        string                `json:"id"`
		Name      string                `json:"name,omitempty"`
		Tier      domain.DifficultyTier `json:"tier"`
		CreatedAt int64                 `json:"createdAt"`
	}

	readInto := func(out []domain.LevelMeta, dir string, tier domain.DifficultyTier, inferTier bool) []domain.LevelMeta {
		ents, err := os.ReadDir(dir)
		if err != nil {
			return out
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var mm m
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			tt := mm.Tier
			if tt == 0 && inferTier {
				tt = tier
			}
			out = append(out, domain.LevelMeta{ID: mm.ID, Name: mm.Name, Tier: tt, CreatedAt: mm.CreatedAt})
		}
		return out
	}

	var out []domain.LevelMeta
	for t := domain.TierTrivial; t <= domain.TierNightmare; t++ {
		out = readInto(out, filepath.Join(s.dir, tierDir(t)), t, true)
	}
	// legacy flat files directly under s.dir
	out = readInto(out, s.dir, domain.TierTrivial, false)
	return out, nil
}
