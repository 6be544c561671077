package services

import (
	"errors"
	"testing"
	"time"

	"github.com/gracechapel/church-backend/internal/identity"
	"github.com/gracechapel/church-backend/internal/models"
)

type prayerFixture struct {
	svc      *PrayerService
	store    *fakeStore
	verifier *stubVerifier
	notifier *stubNotifier
	now      time.Time
}

func newPrayerFixture() *prayerFixture {
	f := &prayerFixture{
		verifier: &stubVerifier{},
		notifier: &stubNotifier{},
		now:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }
	f.store = newFakeStore(clock)
	f.svc = NewPrayerService(f.store, identity.NewHasher("test-secret"), f.verifier, f.notifier)
	f.svc.now = clock
	return f
}

func validSubmission() *SubmitPrayerInput {
	return &SubmitPrayerInput{
		Name:         "Sarah",
		Email:        "sarah@example.org",
		RequestText:  "Please pray for my family during this difficult time.",
		IsPublic:     true,
		CaptchaToken: "tok-ok",
		RemoteIP:     "203.0.113.7",
		UserAgent:    "test-agent",
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := newPrayerFixture()

	prayer, err := f.svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if prayer.Status != models.StatusPublic {
		t.Fatalf("status = %q, want public", prayer.Status)
	}
	if prayer.RiskScore != 0 {
		t.Fatalf("clean text risk = %d, want 0", prayer.RiskScore)
	}
	if prayer.ReportCount != 0 {
		t.Fatalf("report count = %d, want 0", prayer.ReportCount)
	}
	if prayer.SubmitterKey == "" || prayer.SubmitterKey == "203.0.113.7" {
		t.Fatalf("submitter key %q must be a hash, never the raw IP", prayer.SubmitterKey)
	}
	if len(f.store.prayers) != 1 {
		t.Fatalf("store holds %d prayers, want 1", len(f.store.prayers))
	}
	if len(f.notifier.alerts) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(f.notifier.alerts))
	}
}

func TestSubmitHoneypotShortCircuits(t *testing.T) {
	f := newPrayerFixture()

	in := validSubmission()
	in.Honeypot = "http://spam.example"

	_, err := f.svc.Submit(in)
	if !errors.Is(err, ErrBotSuspected) {
		t.Fatalf("expected ErrBotSuspected, got %v", err)
	}
	if len(f.store.prayers) != 0 {
		t.Fatalf("honeypot rejection must not persist anything")
	}
	if f.verifier.calls != 0 {
		t.Fatalf("captcha must not be called after honeypot trip")
	}
	if len(f.notifier.alerts) != 0 {
		t.Fatalf("notifier must not fire on rejection")
	}
}

func TestSubmitCaptchaFailure(t *testing.T) {
	f := newPrayerFixture()
	f.verifier.err = errors.New("invalid-input-response")

	_, err := f.svc.Submit(validSubmission())
	if !errors.Is(err, ErrBotSuspected) {
		t.Fatalf("expected ErrBotSuspected, got %v", err)
	}
	if len(f.store.prayers) != 0 {
		t.Fatalf("captcha rejection must not persist anything")
	}
}

func TestSubmitTooFast(t *testing.T) {
	f := newPrayerFixture()

	in := validSubmission()
	in.StartedAt = f.now.Add(-400 * time.Millisecond).UnixMilli()

	if _, err := f.svc.Submit(in); !errors.Is(err, ErrBotSuspected) {
		t.Fatalf("expected ErrBotSuspected for 400ms fill, got %v", err)
	}

	// A missing startedAt is tolerated.
	if _, err := f.svc.Submit(validSubmission()); err != nil {
		t.Fatalf("missing startedAt should pass, got %v", err)
	}
}

func TestSubmitTooShortAfterCleaning(t *testing.T) {
	f := newPrayerFixture()

	in := validSubmission()
	in.RequestText = "<p><b>Hi</b></p>"

	if _, err := f.svc.Submit(in); !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort, got %v", err)
	}
	if len(f.store.prayers) != 0 {
		t.Fatalf("too-short rejection must not persist anything")
	}
}

func TestSubmitStripsHTMLAndCapsFields(t *testing.T) {
	f := newPrayerFixture()

	in := validSubmission()
	in.Name = "<b>Sarah</b>"
	in.RequestText = "Please pray for <i>my family</i> during this difficult time."

	prayer, err := f.svc.Submit(in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if prayer.Name != "Sarah" {
		t.Fatalf("name = %q, want HTML stripped", prayer.Name)
	}
	if prayer.RequestText != "Please pray for my family during this difficult time." {
		t.Fatalf("request text not cleaned: %q", prayer.RequestText)
	}
}

func TestSubmitRateLimitBoundary(t *testing.T) {
	f := newPrayerFixture()

	for i := 0; i < 3; i++ {
		if _, err := f.svc.Submit(validSubmission()); err != nil {
			t.Fatalf("submission %d failed: %v", i+1, err)
		}
		f.now = f.now.Add(time.Minute)
	}

	// Fourth submission inside the 10-minute window.
	if _, err := f.svc.Submit(validSubmission()); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited on 4th submission, got %v", err)
	}

	// After the window has passed since the first submission, allowed again.
	f.now = f.now.Add(11 * time.Minute)
	if _, err := f.svc.Submit(validSubmission()); err != nil {
		t.Fatalf("submission after window should pass, got %v", err)
	}
}

func TestSubmitQuarantineDecision(t *testing.T) {
	f := newPrayerFixture()

	in := validSubmission()
	in.RequestText = "aaaaaaaaaaaaaaabcdfgh http://a.com http://b.com"

	prayer, err := f.svc.Submit(in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if prayer.Status != models.StatusQuarantine {
		t.Fatalf("spammy text got status %q, want quarantine", prayer.Status)
	}
	if prayer.RiskScore < 50 {
		t.Fatalf("risk = %d, want >= 50", prayer.RiskScore)
	}
	// Quarantine is soft moderation: the prayer is persisted and the
	// moderation alert still goes out.
	if len(f.store.prayers) != 1 {
		t.Fatalf("quarantined prayer must still be persisted")
	}
	if len(f.notifier.alerts) != 1 {
		t.Fatalf("notifier must fire for quarantined submissions")
	}
}

func TestSubmitTrustOffsetsRisk(t *testing.T) {
	f := newPrayerFixture()

	// Build up three clean public posts over previous days.
	for i := 0; i < 3; i++ {
		if _, err := f.svc.Submit(validSubmission()); err != nil {
			t.Fatalf("history submission failed: %v", err)
		}
		f.now = f.now.Add(26 * time.Hour)
	}

	// Short odd text: risk 20 (short + unusual chars), trust capped at 30.
	in := validSubmission()
	in.RequestText = "pray 4 me \U0001F64F"

	prayer, err := f.svc.Submit(in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if prayer.TrustLevel != 30 {
		t.Fatalf("trust = %d, want capped 30", prayer.TrustLevel)
	}
	if prayer.Status != models.StatusPublic {
		t.Fatalf("trusted submitter got status %q, want public", prayer.Status)
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	f := newPrayerFixture()
	f.store.failCreatePrayer = true

	_, err := f.svc.Submit(validSubmission())
	if err == nil {
		t.Fatalf("expected persistence error")
	}
	if errors.Is(err, ErrBotSuspected) || errors.Is(err, ErrRateLimited) {
		t.Fatalf("persistence failure must not map to a client rejection: %v", err)
	}
	if len(f.notifier.alerts) != 0 {
		t.Fatalf("notifier must not fire when persistence fails")
	}
}
