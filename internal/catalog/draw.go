package catalog

import (
	"math/rand/v2"
	"time"

	"oracle/internal/model"
)

// Engine 抽签引擎：从目录中均匀随机抽取一支签。目录按构造保证非空，
// 因此 Draw 没有错误路径；抽签期间的互斥由会话控制器负责。
// Engine draws one lot uniformly at random from the catalog. The catalog is
// non-empty by construction, so Draw has no error path; re-entrancy during a
// pending draw is the session controller's concern.
type Engine struct {
	rng *rand.Rand
}

// NewEngine 创建按时间播种的引擎
// NewEngine creates an engine seeded from the wall clock
func NewEngine() *Engine {
	now := uint64(time.Now().UnixNano())
	return &Engine{rng: rand.New(rand.NewPCG(now, now>>32))}
}

// NewEngineWithSeed 创建确定性引擎，用于测试
// NewEngineWithSeed creates a deterministic engine for tests
func NewEngineWithSeed(seed uint64) *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Draw 均匀抽取一支签
// Draw picks one lot uniformly at random
func (e *Engine) Draw() model.Lot {
	return Lots[e.rng.IntN(len(Lots))]
}

// PoolSample 从 vibe 对应素材池中抽取一条建议作为提示词种子；
// 未知 vibe 返回 false。
// PoolSample picks one pool entry for the vibe as prompt seed material;
// unknown vibes return false.
func (e *Engine) PoolSample(vibe string) (model.Recommendation, bool) {
	pool, ok := Pools[Vibe(vibe)]
	if !ok || len(pool) == 0 {
		return model.Recommendation{}, false
	}
	return pool[e.rng.IntN(len(pool))], true
}
