package chance

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Source 真随机能力，占卜类抽取（六爻、塔罗、灵签）依赖它
type Source interface {
	Float64() float64
	Intn(n int) int
	Coin() bool
}

type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New 创建一个以系统熵为种子的真随机源
func New() Source {
	var b [8]byte
	seed := int64(0)
	if _, err := cryptorand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *randSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Coin 公平抛硬币
func (s *randSource) Coin() bool {
	return s.Float64() < 0.5
}
