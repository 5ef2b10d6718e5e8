package utils

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}
	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("expected mismatch")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42, "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}

	if _, err := ParseSessionToken(token, "other-secret"); err == nil {
		t.Error("expected error with wrong secret")
	}
}

func TestSessionTokenExpiry(t *testing.T) {
	token, err := GenerateSessionToken(42, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseSessionToken(token, "secret"); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestAvatarFilename(t *testing.T) {
	name := AvatarFilename("photo.PNG")
	if !strings.HasPrefix(name, "user_") {
		t.Errorf("unexpected prefix: %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("extension not preserved: %s", name)
	}

	if AvatarFilename("a.jpg") == AvatarFilename("a.jpg") {
		t.Error("filenames should be unique")
	}
}

func TestAllowedImageExt(t *testing.T) {
	for _, ok := range []string{"a.jpg", "b.JPEG", "c.png"} {
		if !AllowedImageExt(ok) {
			t.Errorf("%s should be allowed", ok)
		}
	}
	for _, bad := range []string{"x.gif", "y.exe", "noext"} {
		if AllowedImageExt(bad) {
			t.Errorf("%s should be rejected", bad)
		}
	}
}
