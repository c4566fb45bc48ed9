package gateway

import (
	"encoding/json"
	"testing"

	"github.com/nerrad567/slipstream-core/entity"
)

func TestDecodeEntity(t *testing.T) {
	tests := []struct {
		kind entity.Kind
		raw  string
		want any
	}{
		{entity.KindUser, `{"id":"10","username":"alpha","bot":true}`,
			&entity.User{ID: 10, Username: "alpha", Bot: true}},
		{entity.KindGroup, `{"id":"20","name":"ops","member_count":3}`,
			&entity.Group{ID: 20, Name: "ops", MemberCount: 3}},
		{entity.KindTextChannel, `{"id":"30","name":"general","topic":"chat"}`,
			&entity.TextChannel{ID: 30, Name: "general", Topic: "chat"}},
		{entity.KindEmote, `{"id":"40","name":"wave","animated":true}`,
			&entity.Emote{ID: 40, Name: "wave", Animated: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := decodeEntity(tt.kind, json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("decodeEntity() error = %v", err)
			}
			switch want := tt.want.(type) {
			case *entity.User:
				if *got.(*entity.User) != *want {
					t.Errorf("decodeEntity() = %+v, want %+v", got, want)
				}
			case *entity.Group:
				if *got.(*entity.Group) != *want {
					t.Errorf("decodeEntity() = %+v, want %+v", got, want)
				}
			case *entity.TextChannel:
				if *got.(*entity.TextChannel) != *want {
					t.Errorf("decodeEntity() = %+v, want %+v", got, want)
				}
			case *entity.Emote:
				if *got.(*entity.Emote) != *want {
					t.Errorf("decodeEntity() = %+v, want %+v", got, want)
				}
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := decodeEntity(entity.Kind("webhook"), json.RawMessage(`{}`)); err == nil {
			t.Error("decodeEntity() error = nil, want error for unknown kind")
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := decodeEntity(entity.KindUser, json.RawMessage(`{"id":`)); err == nil {
			t.Error("decodeEntity() error = nil, want error for malformed JSON")
		}
	})
}

func TestFrameDecode(t *testing.T) {
	raw := `{"op":"dispatch","seq":7,"type":"UPSERT","data":{"kind":"user","entity":{"id":"1","username":"a"}}}`

	var f frame
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("unmarshalling frame: %v", err)
	}
	if f.Op != opDispatch || f.Seq != 7 || f.Type != eventUpsert {
		t.Errorf("frame = %+v, want dispatch/7/UPSERT", f)
	}

	var payload statePayload
	if err := json.Unmarshal(f.Data, &payload); err != nil {
		t.Fatalf("unmarshalling payload: %v", err)
	}
	if payload.Kind != entity.KindUser {
		t.Errorf("payload.Kind = %s, want user", payload.Kind)
	}
}
