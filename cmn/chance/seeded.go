// Package chance 提供两类随机能力：
//
//   - Sequence：以数值种子驱动的确定性伪随机序列，同一种子永远产生同一结果，
//     用于黄历宜忌、星座运势等"按天稳定"的内容；
//   - Source：真随机源，用于六爻起卦、塔罗抽牌等每次都应不同的占卜动作。
//
// 两者刻意分离，确定性契约由调用方选择的能力决定，而不是某个全局随机函数。
package chance

import "math"

// Frac 返回 frac(sin(seed)*10000)，值域 [0,1)。
// 非密码学随机，目的只是同种子可复现。
func Frac(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Sequence 确定性伪随机序列，种子通常为毫秒时间戳。
// 连续取数时调用方必须用不同的倍率 k 派生子种子，
// 否则相邻结果会出现可见的相关性。
type Sequence struct {
	Seed float64
}

// NewSequence 用毫秒时间戳构造序列
func NewSequence(unixMilli int64) Sequence {
	return Sequence{Seed: float64(unixMilli)}
}

// Next 以 seed*k 为子种子取一个 [0,1) 的数
func (s Sequence) Next(k float64) float64 {
	return Frac(s.Seed * k)
}

// Index 以 seed*k 为子种子取一个 [0,n) 的下标
func (s Sequence) Index(k float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Next(k) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// ShuffledIndices 确定性 Fisher-Yates 洗牌，返回 [0,n) 的一个排列。
// key 决定第 i 步交换使用的子种子倍率，不同调用点必须使用不同的 key
// 以避免排列之间相互关联。
func (s Sequence) ShuffledIndices(n int, key func(i int) float64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(Frac(s.Seed*key(i)) * float64(i+1))
		if j > i {
			j = i
		}
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
