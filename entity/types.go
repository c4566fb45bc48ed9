package entity

import "github.com/nerrad567/slipstream-core/cache"

// Kind identifies an entity kind for cache routing.
type Kind string

// The entity kinds delivered by the gateway, one cache registry each.
const (
	KindUser          Kind = "user"
	KindGroup         Kind = "group"
	KindRole          Kind = "role"
	KindCategory      Kind = "category"
	KindTextChannel   Kind = "text_channel"
	KindVoiceChannel  Kind = "voice_channel"
	KindDirectChannel Kind = "direct_channel"
	KindEmote         Kind = "emote"
)

// User is an account visible to the client.
type User struct {
	ID       cache.Snowflake `json:"id,string"`
	Username string          `json:"username"`
	Bot      bool            `json:"bot,omitempty"`
	Avatar   string          `json:"avatar,omitempty"`
}

func (u *User) SnowflakeID() cache.Snowflake { return u.ID }
func (u *User) DisplayName() string          { return u.Username }

// Group is a community the client is a member of. On sharded deployments
// each group belongs to exactly one shard.
type Group struct {
	ID          cache.Snowflake `json:"id,string"`
	Name        string          `json:"name"`
	OwnerID     cache.Snowflake `json:"owner_id,string,omitempty"`
	MemberCount int             `json:"member_count,omitempty"`
	Icon        string          `json:"icon,omitempty"`
}

func (g *Group) SnowflakeID() cache.Snowflake { return g.ID }
func (g *Group) DisplayName() string          { return g.Name }

// Role is a permission grouping within a group.
type Role struct {
	ID       cache.Snowflake `json:"id,string"`
	Name     string          `json:"name"`
	GroupID  cache.Snowflake `json:"group_id,string"`
	Position int             `json:"position"`
	Managed  bool            `json:"managed,omitempty"`
}

func (r *Role) SnowflakeID() cache.Snowflake { return r.ID }
func (r *Role) DisplayName() string          { return r.Name }

// Category groups channels within a group for display purposes.
type Category struct {
	ID       cache.Snowflake `json:"id,string"`
	Name     string          `json:"name"`
	GroupID  cache.Snowflake `json:"group_id,string"`
	Position int             `json:"position"`
}

func (c *Category) SnowflakeID() cache.Snowflake { return c.ID }
func (c *Category) DisplayName() string          { return c.Name }

// TextChannel is a message channel within a group.
type TextChannel struct {
	ID       cache.Snowflake `json:"id,string"`
	Name     string          `json:"name"`
	GroupID  cache.Snowflake `json:"group_id,string"`
	ParentID cache.Snowflake `json:"parent_id,string,omitempty"`
	Topic    string          `json:"topic,omitempty"`
	Position int             `json:"position"`
}

func (c *TextChannel) SnowflakeID() cache.Snowflake { return c.ID }
func (c *TextChannel) DisplayName() string          { return c.Name }

// VoiceChannel is an audio channel within a group. The audio subsystem
// itself is outside this core; only the channel record is cached.
type VoiceChannel struct {
	ID        cache.Snowflake `json:"id,string"`
	Name      string          `json:"name"`
	GroupID   cache.Snowflake `json:"group_id,string"`
	ParentID  cache.Snowflake `json:"parent_id,string,omitempty"`
	Bitrate   int             `json:"bitrate,omitempty"`
	UserLimit int             `json:"user_limit,omitempty"`
	Position  int             `json:"position"`
}

func (c *VoiceChannel) SnowflakeID() cache.Snowflake { return c.ID }
func (c *VoiceChannel) DisplayName() string          { return c.Name }

// DirectChannel is a one-to-one message channel with a single recipient.
// Its display name is the recipient's current username.
type DirectChannel struct {
	ID            cache.Snowflake `json:"id,string"`
	RecipientID   cache.Snowflake `json:"recipient_id,string"`
	RecipientName string          `json:"recipient_name"`
}

func (c *DirectChannel) SnowflakeID() cache.Snowflake { return c.ID }
func (c *DirectChannel) DisplayName() string          { return c.RecipientName }

// Emote is a custom symbol uploaded to a group.
type Emote struct {
	ID       cache.Snowflake `json:"id,string"`
	Name     string          `json:"name"`
	GroupID  cache.Snowflake `json:"group_id,string"`
	Animated bool            `json:"animated,omitempty"`
	Managed  bool            `json:"managed,omitempty"`
}

func (e *Emote) SnowflakeID() cache.Snowflake { return e.ID }
func (e *Emote) DisplayName() string          { return e.Name }
