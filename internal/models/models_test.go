package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantLen int
	}{
		{"valid", User{Username: "ana", PasswordDigest: "digest"}, 0},
		{"blank username", User{Username: "   ", PasswordDigest: "digest"}, 1},
		{"missing digest", User{Username: "ana"}, 1},
		{"too long username", User{Username: strings.Repeat("a", MaxUsernameLength+1), PasswordDigest: "digest"}, 1},
		{"multibyte username at limit", User{Username: strings.Repeat("ж", MaxUsernameLength), PasswordDigest: "digest"}, 0},
		{"multibyte username over limit", User{Username: strings.Repeat("ж", MaxUsernameLength+1), PasswordDigest: "digest"}, 1},
		{"nothing set", User{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.user.Validate()
			if len(got) != tt.wantLen {
				t.Errorf("Validate() = %v, want %d problems", got, tt.wantLen)
			}
		})
	}
}

func TestRecipeValidate(t *testing.T) {
	longEnough := "Boil water for a long time and add vegetables"

	tests := []struct {
		name    string
		recipe  Recipe
		wantLen int
	}{
		{"valid", Recipe{Title: "Soup", Instructions: longEnough, UserID: 1}, 0},
		{"valid with minutes", Recipe{Title: "Soup", Instructions: longEnough, MinutesToComplete: intPtr(0), UserID: 1}, 0},
		{"missing title", Recipe{Instructions: longEnough, UserID: 1}, 1},
		{"missing instructions", Recipe{Title: "Soup", UserID: 1}, 1},
		{"short instructions", Recipe{Title: "Soup", Instructions: "Boil water", UserID: 1}, 1},
		{"padded short instructions", Recipe{Title: "Soup", Instructions: "   Boil water          ", UserID: 1}, 1},
		{"exact minimum", Recipe{Title: "Soup", Instructions: strings.Repeat("x", MinInstructionsLength), UserID: 1}, 0},
		{"negative minutes", Recipe{Title: "Soup", Instructions: longEnough, MinutesToComplete: intPtr(-5), UserID: 1}, 1},
		{"no owner", Recipe{Title: "Soup", Instructions: longEnough}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.recipe.Validate()
			if len(got) != tt.wantLen {
				t.Errorf("Validate() = %v, want %d problems", got, tt.wantLen)
			}
		})
	}
}

func TestUserJSON_OmitsDigest(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Username: "ana", PasswordDigest: "secret-digest"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"password_digest", "PasswordDigest", "password"} {
		if _, ok := fields[key]; ok {
			t.Errorf("serialized user must not contain %q", key)
		}
	}
	for _, key := range []string{"id", "username", "image_url", "bio"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized user missing %q", key)
		}
	}
}

func TestRecipeJSON_NestsOwner(t *testing.T) {
	recipe := Recipe{
		ID:           3,
		Title:        "Soup",
		Instructions: "Boil water for a long time and add vegetables",
		UserID:       1,
		User:         &User{ID: 1, Username: "ana", PasswordDigest: "secret-digest"},
	}

	data, err := json.Marshal(recipe)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if strings.Contains(string(data), "secret-digest") {
		t.Error("nested user leaked password digest")
	}

	var decoded struct {
		UserID int64 `json:"user_id"`
		User   struct {
			Username string `json:"username"`
		} `json:"user"`
		MinutesToComplete *int `json:"minutes_to_complete"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.UserID != 1 || decoded.User.Username != "ana" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.MinutesToComplete != nil {
		t.Errorf("minutes_to_complete = %v, want null", *decoded.MinutesToComplete)
	}
}
