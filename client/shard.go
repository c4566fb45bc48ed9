package client

import "fmt"

// ShardInfo is the immutable shard assignment of one gateway connection:
// which partition this client serves and how many partitions the full
// deployment has. It is set once, when the gateway confirms the session.
type ShardInfo struct {
	index int
	count int
}

// NewShardInfo creates a shard assignment.
func NewShardInfo(index, count int) ShardInfo {
	return ShardInfo{index: index, count: count}
}

// ShardIndex returns this connection's shard number, zero-based.
func (s ShardInfo) ShardIndex() int { return s.index }

// ShardCount returns the total number of shards in the deployment.
func (s ShardInfo) ShardCount() int { return s.count }

// String renders the assignment as "[index / count]" for log output.
func (s ShardInfo) String() string {
	return fmt.Sprintf("[%d / %d]", s.index, s.count)
}

// SetShardInfo records the shard assignment delivered with the session
// confirmation. The assignment is immutable: the first call wins and
// later calls are ignored with a warning.
func (c *Client) SetShardInfo(index, count int) {
	c.shardMu.Lock()
	defer c.shardMu.Unlock()

	if c.shard != nil {
		c.logger.Warn("ignoring repeated shard assignment",
			"current", c.shard.String(),
			"ignored", ShardInfo{index: index, count: count}.String(),
		)
		return
	}
	info := NewShardInfo(index, count)
	c.shard = &info
	c.logger.Info("shard assignment received", "shard", info.String())
}

// ShardInfo returns the shard assignment and whether one has been
// received yet. Unsharded deployments report [0 / 1].
func (c *Client) ShardInfo() (ShardInfo, bool) {
	c.shardMu.Lock()
	defer c.shardMu.Unlock()

	if c.shard == nil {
		return ShardInfo{}, false
	}
	return *c.shard, true
}
