package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizado/quizado/internal/grading"
	"github.com/quizado/quizado/internal/quiz"
	"github.com/quizado/quizado/internal/result"

	"github.com/go-chi/chi/v5"
)

// SubmitQuizHandler grades one attempt: body carries the raw answers indexed
// by question position, the response is the persisted result. A missing quiz
// aborts the attempt with 404; a failed save reports 500 with the computed
// summary discarded by the caller, not by us.
func SubmitQuizHandler(quizzes quiz.Store, results result.Store, grader grading.Grader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var req struct {
			Answers []interface{} `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		qz, err := quizzes.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		summary := grading.Aggregate(grader, qz, req.Answers)
		saved, err := results.Save(r.Context(), result.FromSummary(summary))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSONStatus(w, http.StatusCreated, saved)
	}
}
