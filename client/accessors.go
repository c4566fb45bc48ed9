package client

import (
	"github.com/nerrad567/slipstream-core/cache"
	"github.com/nerrad567/slipstream-core/entity"
)

// Per-kind cache accessors. Each kind exposes the same quartet: the
// registry itself for efficient repeated access, a materialising list, a
// point lookup (numeric and string form), and a name lookup. The list and
// name variants snapshot the registry, so grab the registry once instead
// of calling them in a loop.

// UserCache returns the user registry.
func (c *Client) UserCache() *cache.Registry[*entity.User] { return c.users }

// Users returns a snapshot of all cached users.
func (c *Client) Users() []*entity.User { return c.users.Snapshot() }

// UserByID returns the cached user with the identifier, if any.
func (c *Client) UserByID(id cache.Snowflake) (*entity.User, bool) { return c.users.Get(id) }

// UserByString parses a base-10 identifier and returns the cached user.
// A nil user with a nil error means the identifier parsed but is not
// cached.
func (c *Client) UserByString(id string) (*entity.User, error) {
	v, _, err := c.users.GetString(id)
	return v, err
}

// UsersByName returns all cached users whose username matches exactly
// under the chosen case sensitivity.
func (c *Client) UsersByName(name string, ignoreCase bool) ([]*entity.User, error) {
	return c.users.ByName(name, ignoreCase)
}

// GroupCache returns the group registry.
func (c *Client) GroupCache() *cache.Registry[*entity.Group] { return c.groups }

// Groups returns a snapshot of all cached groups.
func (c *Client) Groups() []*entity.Group { return c.groups.Snapshot() }

// GroupByID returns the cached group with the identifier, if any.
func (c *Client) GroupByID(id cache.Snowflake) (*entity.Group, bool) { return c.groups.Get(id) }

// GroupByString parses a base-10 identifier and returns the cached group.
func (c *Client) GroupByString(id string) (*entity.Group, error) {
	v, _, err := c.groups.GetString(id)
	return v, err
}

// GroupsByName returns all cached groups whose name matches exactly.
func (c *Client) GroupsByName(name string, ignoreCase bool) ([]*entity.Group, error) {
	return c.groups.ByName(name, ignoreCase)
}

// RoleCache returns the role registry, aggregated across all groups.
func (c *Client) RoleCache() *cache.Registry[*entity.Role] { return c.roles }

// Roles returns a snapshot of all cached roles.
func (c *Client) Roles() []*entity.Role { return c.roles.Snapshot() }

// RoleByID returns the cached role with the identifier, if any.
func (c *Client) RoleByID(id cache.Snowflake) (*entity.Role, bool) { return c.roles.Get(id) }

// RoleByString parses a base-10 identifier and returns the cached role.
func (c *Client) RoleByString(id string) (*entity.Role, error) {
	v, _, err := c.roles.GetString(id)
	return v, err
}

// RolesByName returns all cached roles whose name matches exactly.
func (c *Client) RolesByName(name string, ignoreCase bool) ([]*entity.Role, error) {
	return c.roles.ByName(name, ignoreCase)
}

// CategoryCache returns the channel category registry.
func (c *Client) CategoryCache() *cache.Registry[*entity.Category] { return c.categories }

// Categories returns a snapshot of all cached categories.
func (c *Client) Categories() []*entity.Category { return c.categories.Snapshot() }

// CategoryByID returns the cached category with the identifier, if any.
func (c *Client) CategoryByID(id cache.Snowflake) (*entity.Category, bool) {
	return c.categories.Get(id)
}

// CategoryByString parses a base-10 identifier and returns the cached
// category.
func (c *Client) CategoryByString(id string) (*entity.Category, error) {
	v, _, err := c.categories.GetString(id)
	return v, err
}

// CategoriesByName returns all cached categories whose name matches
// exactly.
func (c *Client) CategoriesByName(name string, ignoreCase bool) ([]*entity.Category, error) {
	return c.categories.ByName(name, ignoreCase)
}

// TextChannelCache returns the text channel registry.
func (c *Client) TextChannelCache() *cache.Registry[*entity.TextChannel] { return c.text }

// TextChannels returns a snapshot of all cached text channels.
func (c *Client) TextChannels() []*entity.TextChannel { return c.text.Snapshot() }

// TextChannelByID returns the cached text channel with the identifier, if
// any.
func (c *Client) TextChannelByID(id cache.Snowflake) (*entity.TextChannel, bool) {
	return c.text.Get(id)
}

// TextChannelByString parses a base-10 identifier and returns the cached
// text channel.
func (c *Client) TextChannelByString(id string) (*entity.TextChannel, error) {
	v, _, err := c.text.GetString(id)
	return v, err
}

// TextChannelsByName returns all cached text channels whose name matches
// exactly.
func (c *Client) TextChannelsByName(name string, ignoreCase bool) ([]*entity.TextChannel, error) {
	return c.text.ByName(name, ignoreCase)
}

// VoiceChannelCache returns the voice channel registry.
func (c *Client) VoiceChannelCache() *cache.Registry[*entity.VoiceChannel] { return c.voice }

// VoiceChannels returns a snapshot of all cached voice channels.
func (c *Client) VoiceChannels() []*entity.VoiceChannel { return c.voice.Snapshot() }

// VoiceChannelByID returns the cached voice channel with the identifier,
// if any.
func (c *Client) VoiceChannelByID(id cache.Snowflake) (*entity.VoiceChannel, bool) {
	return c.voice.Get(id)
}

// VoiceChannelByString parses a base-10 identifier and returns the cached
// voice channel.
func (c *Client) VoiceChannelByString(id string) (*entity.VoiceChannel, error) {
	v, _, err := c.voice.GetString(id)
	return v, err
}

// VoiceChannelsByName returns all cached voice channels whose name
// matches exactly.
func (c *Client) VoiceChannelsByName(name string, ignoreCase bool) ([]*entity.VoiceChannel, error) {
	return c.voice.ByName(name, ignoreCase)
}

// DirectChannelCache returns the direct channel registry.
func (c *Client) DirectChannelCache() *cache.Registry[*entity.DirectChannel] { return c.direct }

// DirectChannels returns a snapshot of all cached direct channels.
func (c *Client) DirectChannels() []*entity.DirectChannel { return c.direct.Snapshot() }

// DirectChannelByID returns the cached direct channel with the
// identifier, if any.
func (c *Client) DirectChannelByID(id cache.Snowflake) (*entity.DirectChannel, bool) {
	return c.direct.Get(id)
}

// DirectChannelByString parses a base-10 identifier and returns the
// cached direct channel.
func (c *Client) DirectChannelByString(id string) (*entity.DirectChannel, error) {
	v, _, err := c.direct.GetString(id)
	return v, err
}

// EmoteCache returns the custom emote registry.
func (c *Client) EmoteCache() *cache.Registry[*entity.Emote] { return c.emotes }

// Emotes returns a snapshot of all cached emotes.
func (c *Client) Emotes() []*entity.Emote { return c.emotes.Snapshot() }

// EmoteByID returns the cached emote with the identifier, if any.
func (c *Client) EmoteByID(id cache.Snowflake) (*entity.Emote, bool) { return c.emotes.Get(id) }

// EmoteByString parses a base-10 identifier and returns the cached emote.
func (c *Client) EmoteByString(id string) (*entity.Emote, error) {
	v, _, err := c.emotes.GetString(id)
	return v, err
}

// EmotesByName returns all cached emotes whose name matches exactly.
func (c *Client) EmotesByName(name string, ignoreCase bool) ([]*entity.Emote, error) {
	return c.emotes.ByName(name, ignoreCase)
}
