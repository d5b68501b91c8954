package trace

import (
	"io"
	"math/rand"
)

// SyntheticConfig describes a generated trace.
type SyntheticConfig struct {
	Requests  int64
	Objects   uint64  // distinct keys, 0..Objects-1
	Skew      float64 // Zipf s parameter, must be > 1
	MaxSize   float64 // sizes are drawn per object in (0, MaxSize]
	DataTypes int     // categories 0..DataTypes-1
	Seed      int64
}

/*
Synthetic generates a Zipf-distributed trace: a few hot objects and a long tail.

Each object keeps the same size and data type for the whole trace, like a real
file would, so the store's repeat-touch behavior is exercised the normal way.
*/
type Synthetic struct {
	cfg   SyntheticConfig
	zipf  *rand.Zipf
	rng   *rand.Rand
	sizes map[int64]float64
	types map[int64]int
	seq   int64
}

func NewSynthetic(cfg SyntheticConfig) *Synthetic {
	if cfg.Objects == 0 {
		cfg.Objects = 1
	}
	if cfg.Skew <= 1 {
		cfg.Skew = 1.1
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 1
	}
	if cfg.DataTypes <= 0 {
		cfg.DataTypes = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Synthetic{
		cfg:   cfg,
		zipf:  rand.NewZipf(rng, cfg.Skew, 1, cfg.Objects-1),
		rng:   rng,
		sizes: make(map[int64]float64),
		types: make(map[int64]int),
	}
}

func (s *Synthetic) Next() (Request, error) {
	if s.seq >= s.cfg.Requests {
		return Request{}, io.EOF
	}

	key := int64(s.zipf.Uint64())
	size, ok := s.sizes[key]
	if !ok {
		size = s.cfg.MaxSize * (1 - s.rng.Float64())
		s.sizes[key] = size
		s.types[key] = s.rng.Intn(s.cfg.DataTypes)
	}

	req := Request{Seq: s.seq, Key: key, Size: size, DataType: s.types[key]}
	s.seq++
	return req, nil
}
