package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mistake-tracker/backend/internal/api"
	"github.com/mistake-tracker/backend/internal/domain/question"
	"github.com/mistake-tracker/backend/internal/store"
)

func newTestServer(t *testing.T) (*http.ServeMux, *store.SQLiteStore) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	bank := []question.Question{
		{
			ID: "q1", Subject: question.SubjectMath, Difficulty: question.DifficultyEasy,
			Text: "Question q1", Choices: map[string]string{"A": "1", "B": "2"}, CorrectChoice: "A", Rationale: "r1",
		},
		{
			ID: "q2", Subject: question.SubjectMath, Difficulty: question.DifficultyEasy,
			Text: "Question q2", Choices: map[string]string{"A": "1", "B": "2"}, CorrectChoice: "B", Rationale: "r2",
		},
		{
			ID: "q3", Subject: question.SubjectRW, Difficulty: question.DifficultyHard,
			Text: "Question q3", Choices: map[string]string{"A": "1", "B": "2"}, CorrectChoice: "A", Rationale: "r3",
		},
	}
	if err := s.SeedQuestions(bank); err != nil {
		t.Fatalf("SeedQuestions failed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := api.NewHandler(s, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)
	return mux, s
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func submitBody(includeMistake bool) api.SubmitSessionRequest {
	selected := "1"
	wrongChoice := "2"
	reason := "misread the prompt"
	avoid := "read twice"

	answers := []api.SubmitAnswer{
		{
			QuestionID: "q1", QuestionText: "Question q1",
			Subject: "math", Difficulty: "easy",
			IsCorrect: true, SelectedChoice: &selected, Rationale: "r1",
		},
		{
			QuestionID: "q2", QuestionText: "Question q2",
			Subject: "math", Difficulty: "easy",
			IsCorrect: true, SelectedChoice: &selected, Rationale: "r2",
		},
	}
	if includeMistake {
		answers = append(answers, api.SubmitAnswer{
			QuestionID: "q3", QuestionText: "Question q3",
			Subject: "math", Difficulty: "easy",
			IsCorrect: false, SelectedChoice: &wrongChoice, Rationale: "r3",
			ReasonForMistake: &reason, HowToAvoidMistake: &avoid,
		})
	}
	return api.SubmitSessionRequest{Answers: answers}
}

func TestSubmitSessionAndStats(t *testing.T) {
	mux, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/sessions", submitBody(true))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var submitted api.SubmitSessionResponse
	decodeBody(t, rec, &submitted)
	if submitted.Correct != 2 || submitted.Total != 3 || submitted.Percent != 67 {
		t.Fatalf("unexpected score summary: %+v", submitted)
	}
	if submitted.SessionID < 1 {
		t.Fatalf("expected a session id, got %d", submitted.SessionID)
	}

	rec = doJSON(t, mux, http.MethodGet, "/sessions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed api.ListSessionsResponse
	decodeBody(t, rec, &listed)
	if len(listed.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(listed.Sessions))
	}
	if listed.Sessions[0].Correct != 2 || listed.Sessions[0].Total != 3 {
		t.Fatalf("unexpected session stats: %+v", listed.Sessions[0])
	}
	if listed.AllTime.TestsTaken != 1 || listed.AllTime.AveragePercent != 67 {
		t.Fatalf("unexpected all-time stats: %+v", listed.AllTime)
	}

	rec = doJSON(t, mux, http.MethodGet, "/sessions/1/answers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var answers []api.AnswerResponse
	decodeBody(t, rec, &answers)
	if len(answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(answers))
	}
	statuses := make(map[string]int)
	for _, a := range answers {
		statuses[a.Status]++
	}
	if statuses["solved"] != 2 || statuses["mistake"] != 1 {
		t.Fatalf("unexpected status breakdown: %v", statuses)
	}

	rec = doJSON(t, mux, http.MethodGet, "/sessions/999/answers", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", rec.Code)
	}
}

func TestSubmitSessionRejectsInvalidReflection(t *testing.T) {
	mux, _ := newTestServer(t)

	reason := "lucky"
	body := submitBody(false)
	body.Answers[0].IsCorrect = false
	body.Answers[0].ReasonForGuess = &reason // guess pair on an incorrect answer

	rec := doJSON(t, mux, http.MethodPost, "/sessions", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/tracker", nil)
	var tracker api.TrackerResponse
	decodeBody(t, rec, &tracker)
	if tracker.Total != 0 {
		t.Fatalf("expected nothing written after rejected batch, got %d", tracker.Total)
	}
}

func TestSubmitSessionRequiresAnswers(t *testing.T) {
	mux, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/sessions", api.SubmitSessionRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Errors use the same JSON body shape as every other response.
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json error body, got content type %q", ct)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	if body.Error == "" {
		t.Fatal("expected an error field in the response body")
	}
}

func TestTrackerFiltersAndPaging(t *testing.T) {
	mux, _ := newTestServer(t)

	if rec := doJSON(t, mux, http.MethodPost, "/sessions", submitBody(true)); rec.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d", rec.Code)
	}

	rec := doJSON(t, mux, http.MethodGet, "/tracker", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var all api.TrackerResponse
	decodeBody(t, rec, &all)
	if all.Total != 3 || len(all.Answers) != 3 {
		t.Fatalf("expected all 3 rows, got %+v", all)
	}
	if all.PageSize != 20 || all.Page != 1 {
		t.Fatalf("unexpected paging defaults: %+v", all)
	}

	rec = doJSON(t, mux, http.MethodGet, "/tracker?statuses=mistake", nil)
	var mistakes api.TrackerResponse
	decodeBody(t, rec, &mistakes)
	if mistakes.Total != 1 || mistakes.Answers[0].Status != "mistake" {
		t.Fatalf("expected one mistake row, got %+v", mistakes)
	}

	// A present-but-empty filter is every chip toggled off.
	rec = doJSON(t, mux, http.MethodGet, "/tracker?statuses=", nil)
	var none api.TrackerResponse
	decodeBody(t, rec, &none)
	if none.Total != 0 {
		t.Fatalf("expected empty filter to match nothing, got %d", none.Total)
	}

	rec = doJSON(t, mux, http.MethodGet, "/tracker?subjects=rw", nil)
	var rw api.TrackerResponse
	decodeBody(t, rec, &rw)
	if rw.Total != 0 {
		t.Fatalf("expected no rw rows, got %d", rw.Total)
	}

	if rec := doJSON(t, mux, http.MethodGet, "/tracker?subjects=science", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown subject, got %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, "/tracker?page=0", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad page, got %d", rec.Code)
	}
}

func TestSelectQuestions(t *testing.T) {
	mux, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/tests/questions?subject=math&difficulty=easy&count=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var questions []api.QuestionResponse
	decodeBody(t, rec, &questions)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Subject != "math" || questions[0].Difficulty != "easy" {
		t.Fatalf("wrong configuration served: %+v", questions[0])
	}
	if len(questions[0].Choices) == 0 {
		t.Fatal("choices not returned")
	}

	if rec := doJSON(t, mux, http.MethodGet, "/tests/questions?subject=science&difficulty=easy", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid subject, got %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, "/tests/questions?subject=math&difficulty=easy&count=zero", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid count, got %d", rec.Code)
	}

	// A confidently solved question drops out of the rotation.
	if rec := doJSON(t, mux, http.MethodPost, "/sessions", submitBody(false)); rec.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/tests/questions?subject=math&difficulty=easy&count=10", nil)
	decodeBody(t, rec, &questions)
	if len(questions) != 0 {
		t.Fatalf("expected no eligible math/easy questions after solving both, got %d", len(questions))
	}
}

func TestNotesRoundTrip(t *testing.T) {
	mux, _ := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/notes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var notes api.NotesResponse
	decodeBody(t, rec, &notes)
	if notes.Text != store.DefaultNotes {
		t.Fatalf("expected default notes, got %q", notes.Text)
	}

	rec = doJSON(t, mux, http.MethodPut, "/notes", api.SaveNotesRequest{Text: "comma splices"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/notes", nil)
	decodeBody(t, rec, &notes)
	if notes.Text != "comma splices" {
		t.Fatalf("expected saved notes, got %q", notes.Text)
	}
}

func TestResetTracker(t *testing.T) {
	mux, s := newTestServer(t)

	if rec := doJSON(t, mux, http.MethodPost, "/sessions", submitBody(true)); rec.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d", rec.Code)
	}

	rec := doJSON(t, mux, http.MethodPost, "/tracker/reset", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/tracker", nil)
	var tracker api.TrackerResponse
	decodeBody(t, rec, &tracker)
	if tracker.Total != 0 {
		t.Fatalf("expected empty tracker after reset, got %d", tracker.Total)
	}

	rec = doJSON(t, mux, http.MethodGet, "/sessions", nil)
	var listed api.ListSessionsResponse
	decodeBody(t, rec, &listed)
	if len(listed.Sessions) != 0 {
		t.Fatalf("expected no sessions after reset, got %d", len(listed.Sessions))
	}

	// The question bank survives.
	count, err := s.CountQuestions()
	if err != nil {
		t.Fatalf("CountQuestions failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected question bank untouched, got %d", count)
	}
}
