package client

import (
	"github.com/nerrad567/slipstream-core/cache"
	"github.com/nerrad567/slipstream-core/entity"
)

// ShardedClient aggregates one Client per shard and presents their caches
// as unified cross-shard views. Lookups scan shards in shard order;
// snapshots concatenate per-shard snapshots and cost the sum of the
// members.
//
// The per-shard clients keep their own lifecycle gates; readiness of the
// whole deployment means every shard's gate is Connected.
type ShardedClient struct {
	shards []*Client

	users      *cache.Composite[*entity.User]
	groups     *cache.Composite[*entity.Group]
	roles      *cache.Composite[*entity.Role]
	categories *cache.Composite[*entity.Category]
	text       *cache.Composite[*entity.TextChannel]
	voice      *cache.Composite[*entity.VoiceChannel]
	direct     *cache.Composite[*entity.DirectChannel]
	emotes     *cache.Composite[*entity.Emote]
}

// NewSharded builds the unified views over the given per-shard clients,
// in shard order.
func NewSharded(shards ...*Client) *ShardedClient {
	s := &ShardedClient{shards: shards}

	userViews := make([]cache.View[*entity.User], len(shards))
	groupViews := make([]cache.View[*entity.Group], len(shards))
	roleViews := make([]cache.View[*entity.Role], len(shards))
	categoryViews := make([]cache.View[*entity.Category], len(shards))
	textViews := make([]cache.View[*entity.TextChannel], len(shards))
	voiceViews := make([]cache.View[*entity.VoiceChannel], len(shards))
	directViews := make([]cache.View[*entity.DirectChannel], len(shards))
	emoteViews := make([]cache.View[*entity.Emote], len(shards))
	for i, c := range shards {
		userViews[i] = c.users
		groupViews[i] = c.groups
		roleViews[i] = c.roles
		categoryViews[i] = c.categories
		textViews[i] = c.text
		voiceViews[i] = c.voice
		directViews[i] = c.direct
		emoteViews[i] = c.emotes
	}

	s.users = cache.NewComposite(userViews...)
	s.groups = cache.NewComposite(groupViews...)
	s.roles = cache.NewComposite(roleViews...)
	s.categories = cache.NewComposite(categoryViews...)
	s.text = cache.NewComposite(textViews...)
	s.voice = cache.NewComposite(voiceViews...)
	s.direct = cache.NewComposite(directViews...)
	s.emotes = cache.NewComposite(emoteViews...)
	return s
}

// ShardCount returns the number of aggregated shards.
func (s *ShardedClient) ShardCount() int { return len(s.shards) }

// Shard returns the client for one shard, nil when out of range.
func (s *ShardedClient) Shard(index int) *Client {
	if index < 0 || index >= len(s.shards) {
		return nil
	}
	return s.shards[index]
}

// Unified cross-shard cache views, one per entity kind.

// UserCache returns the unified user view across all shards.
func (s *ShardedClient) UserCache() *cache.Composite[*entity.User] { return s.users }

// GroupCache returns the unified group view across all shards.
func (s *ShardedClient) GroupCache() *cache.Composite[*entity.Group] { return s.groups }

// RoleCache returns the unified role view across all shards.
func (s *ShardedClient) RoleCache() *cache.Composite[*entity.Role] { return s.roles }

// CategoryCache returns the unified category view across all shards.
func (s *ShardedClient) CategoryCache() *cache.Composite[*entity.Category] { return s.categories }

// TextChannelCache returns the unified text channel view across all
// shards.
func (s *ShardedClient) TextChannelCache() *cache.Composite[*entity.TextChannel] { return s.text }

// VoiceChannelCache returns the unified voice channel view across all
// shards.
func (s *ShardedClient) VoiceChannelCache() *cache.Composite[*entity.VoiceChannel] { return s.voice }

// DirectChannelCache returns the unified direct channel view across all
// shards.
func (s *ShardedClient) DirectChannelCache() *cache.Composite[*entity.DirectChannel] { return s.direct }

// EmoteCache returns the unified emote view across all shards.
func (s *ShardedClient) EmoteCache() *cache.Composite[*entity.Emote] { return s.emotes }

// UserByID looks the user up across all shards, first shard wins.
func (s *ShardedClient) UserByID(id cache.Snowflake) (*entity.User, bool) { return s.users.Get(id) }

// GroupByID looks the group up across all shards.
func (s *ShardedClient) GroupByID(id cache.Snowflake) (*entity.Group, bool) {
	return s.groups.Get(id)
}

// UsersByName returns matching users from every shard, shard order
// preserved, duplicates possible when shards disagree.
func (s *ShardedClient) UsersByName(name string, ignoreCase bool) ([]*entity.User, error) {
	return s.users.ByName(name, ignoreCase)
}

// GroupsByName returns matching groups from every shard.
func (s *ShardedClient) GroupsByName(name string, ignoreCase bool) ([]*entity.Group, error) {
	return s.groups.ByName(name, ignoreCase)
}
