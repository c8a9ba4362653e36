package game

// SpawnKey 轮次作用域的刷怪指令键（指令ID ⊕ 轮次）
type SpawnKey struct {
	DirectiveID string
	Cycle       int
}

// SpawnTracker 记录每条指令在每个轮次中已经生成的敌人数量
//
// 条目在某指令某轮次第一次被评估时惰性创建，之后从不删除。
// 键按轮次唯一，条目数量约为 指令数 × 已经历的轮次数，
// 正常游戏时长内增长缓慢，因此不做清理。
type SpawnTracker struct {
	spawned map[SpawnKey]uint32
}

// NewSpawnTracker 创建空的刷怪计数器
func NewSpawnTracker() *SpawnTracker {
	return &SpawnTracker{spawned: make(map[SpawnKey]uint32)}
}

// AlreadySpawned 返回指定键已生成的数量，首次访问时创建值为 0 的条目
func (t *SpawnTracker) AlreadySpawned(key SpawnKey) uint32 {
	n, ok := t.spawned[key]
	if !ok {
		t.spawned[key] = 0
	}
	return n
}

// Peek 只读查询，不创建条目
func (t *SpawnTracker) Peek(key SpawnKey) (uint32, bool) {
	n, ok := t.spawned[key]
	return n, ok
}

// Set 将已生成数量设置为本次评估的配额（不是累加）
func (t *SpawnTracker) Set(key SpawnKey, total uint32) {
	t.spawned[key] = total
}

// Len 返回条目数量
func (t *SpawnTracker) Len() int {
	return len(t.spawned)
}
