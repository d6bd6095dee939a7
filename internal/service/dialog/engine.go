// Package dialog implements the intent router: it classifies each user turn,
// maintains the session's conversational context, and delegates qualifying
// queries to the generation and facility-lookup collaborators.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careline/medichat/internal/lexicon"
	"github.com/careline/medichat/internal/model/chat"
	"github.com/careline/medichat/internal/sanitize"
	"github.com/careline/medichat/internal/service/session"
)

var (
	// ErrEmptyMessage is a client input fault raised before any state
	// mutation or collaborator call.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrGeneratorUnavailable is returned when a turn needs the generation
	// collaborator but none is configured.
	ErrGeneratorUnavailable = errors.New("generation service is not configured")
)

// Generator produces text for a history window plus an instruction.
type Generator interface {
	Generate(ctx context.Context, history []chat.Message, instruction string) (string, error)
}

// Locator lists nearby facilities for a free-text location. It never fails;
// lookup problems degrade to placeholder strings.
type Locator interface {
	FindNearbyFacilities(ctx context.Context, locationText string) []string
}

// Request is one user turn. Age <= 0 and empty strings mean "not supplied".
type Request struct {
	Message   string
	Age       int
	Gender    string
	Location  string
	SessionID string
}

// historyWindow caps how many stored turns feed a generation prompt. The
// window is raw entries, user and assistant turns mixed.
const historyWindow = 5

const (
	replyGreeting    = "Hello! How can I assist you with your medical concern today?"
	replyFarewell    = "You are welcome, You can start a new chat if you have any other medical concerns."
	replyNeedProfile = "I need to know your age and gender to provide medication and dosage information. Please enter your age and gender."
	replyNeedIllness = "Please specify the illness you need medication for."
	replyRefusal     = "Sorry, I can only assist you with medical concerns, please mention your medical concern."
	replyReset       = "Session reset successfully."
)

var medicationTriggers = []string{"medication", "dosage", "prescription", "medicine"}

// illnessPhrases are tried in order; the illness is the text after the first
// phrase present. "having" precedes "have" so the longer phrase wins.
var illnessPhrases = []string{"suffering with", "having", "have"}

var facilityTriggers = []string{"hospital", "hospitals", "clinic", "clinics"}

// Engine routes turns. It owns no state beyond the injected store.
type Engine struct {
	sessions  session.Store
	generator Generator
	locator   Locator
}

// NewEngine wires the router to its collaborators. generator and locator may
// be nil when the corresponding service is not configured; the affected
// paths then fail per the error taxonomy instead of at startup.
func NewEngine(sessions session.Store, generator Generator, locator Locator) *Engine {
	return &Engine{sessions: sessions, generator: generator, locator: locator}
}

// Respond classifies one turn and returns the single reply string. The
// decision order is a deliberate priority policy; reordering the checks
// changes user-visible behavior.
func (e *Engine) Respond(ctx context.Context, req Request) (string, error) {
	message := lexicon.Normalize(req.Message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	key := req.SessionID
	if key == "" {
		key = chat.DefaultSessionKey
	}
	sess := e.sessions.GetOrCreate(key)

	if lexicon.IsGreeting(message) {
		return replyGreeting, nil
	}
	if lexicon.IsFarewell(message) {
		return replyFarewell, nil
	}

	if containsAny(message, medicationTriggers) {
		return e.medicationReply(ctx, sess, req, message)
	}

	if phrase, ok := matchIllnessPhrase(message); ok {
		illness := extractIllness(message, phrase)
		sess.Illness = illness
		sess.Topic = chat.TopicIllness
		return fmt.Sprintf("Got it. You are suffering with %s. How can I assist you further?", illness), nil
	}

	if containsAny(message, facilityTriggers) && strings.TrimSpace(req.Location) != "" {
		facilities := e.findFacilities(ctx, req.Location)
		return "Nearby hospitals are: " + strings.Join(facilities, ", "), nil
	}

	if !lexicon.ContainsMedicalTerm(message) {
		return replyRefusal, nil
	}

	return e.generalReply(ctx, sess, message)
}

// Reset removes the session entirely. Resetting an unknown key yields the
// same acknowledgment, so the operation is idempotent.
func (e *Engine) Reset(sessionID string) string {
	e.sessions.Delete(sessionID)
	return replyReset
}

func (e *Engine) medicationReply(ctx context.Context, sess *chat.Session, req Request, message string) (string, error) {
	if req.Age <= 0 || strings.TrimSpace(req.Gender) == "" {
		return replyNeedProfile, nil
	}
	if sess.Illness == "" {
		return replyNeedIllness, nil
	}

	instruction := fmt.Sprintf(
		"Provide medication details for %s for a %d-year-old %s. Include common medications and dosage information.",
		sess.Illness, req.Age, strings.ToLower(strings.TrimSpace(req.Gender)),
	)
	return e.generate(ctx, sess, message, instruction)
}

func (e *Engine) generalReply(ctx context.Context, sess *chat.Session, message string) (string, error) {
	instruction := fmt.Sprintf(
		"Provide clear, point-wise information about: %s. Include precautions, remedies, and other relevant details.",
		message,
	)

	reply, err := e.generate(ctx, sess, message, instruction)
	if err != nil {
		return "", err
	}

	if strings.Contains(message, "remedies") || strings.Contains(message, "instructions") {
		sess.Topic = chat.TopicRemedies
	}
	return reply, nil
}

// generate appends the user turn, runs the collaborator over the recent
// history window, and stores the sanitized reply. The user turn is appended
// before the call and intentionally stays in history when the call fails.
func (e *Engine) generate(ctx context.Context, sess *chat.Session, userMessage, instruction string) (string, error) {
	if e.generator == nil {
		return "", ErrGeneratorUnavailable
	}

	sess.Append(chat.SenderUser, userMessage)

	raw, err := e.generator.Generate(ctx, sess.Window(historyWindow), instruction)
	if err != nil {
		return "", err
	}

	formatted := sanitize.FormatReply(sanitize.StripDisclaimers(strings.TrimSpace(raw)))
	sess.Append(chat.SenderAssistant, formatted)
	return formatted, nil
}

func (e *Engine) findFacilities(ctx context.Context, locationText string) []string {
	if e.locator == nil {
		return []string{"Error fetching nearby hospitals."}
	}
	return e.locator.FindNearbyFacilities(ctx, locationText)
}

func containsAny(message string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(message, trigger) {
			return true
		}
	}
	return false
}

func matchIllnessPhrase(message string) (string, bool) {
	for _, phrase := range illnessPhrases {
		if strings.Contains(message, phrase) {
			return phrase, true
		}
	}
	return "", false
}

func extractIllness(message, phrase string) string {
	idx := strings.Index(message, phrase)
	return strings.TrimSpace(message[idx+len(phrase):])
}
