package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizado/quizado/internal/quiz"

	"github.com/go-chi/chi/v5"
)

func ListQuizzesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if quizzes == nil {
			quizzes = []quiz.Quiz{}
		}
		writeJSON(w, quizzes)
	}
}

func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		qz, err := store.Get(r.Context(), id)
		if err != nil {
			statusError(w, err, quiz.ErrNotFound)
			return
		}
		writeJSON(w, qz)
	}
}

func CreateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var qz quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&qz); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := qz.Validate(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		created, err := store.Create(r.Context(), qz)
		if err != nil {
			if errors.Is(err, quiz.ErrNameExists) {
				http.Error(w, err.Error(), 409)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSONStatus(w, http.StatusCreated, created)
	}
}

func UpdateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var qz quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&qz); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := qz.Validate(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		updated, err := store.Update(r.Context(), id, qz)
		if err != nil {
			if errors.Is(err, quiz.ErrNameExists) {
				http.Error(w, err.Error(), 409)
				return
			}
			statusError(w, err, quiz.ErrNotFound)
			return
		}
		writeJSON(w, updated)
	}
}

func DeleteQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		if err := store.Delete(r.Context(), id); err != nil {
			statusError(w, err, quiz.ErrNotFound)
			return
		}
		writeJSON(w, map[string]string{"message": "quiz deleted"})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusError maps a store sentinel to 404 and everything else to 500.
func statusError(w http.ResponseWriter, err, notFound error) {
	if errors.Is(err, notFound) {
		http.Error(w, err.Error(), 404)
		return
	}
	http.Error(w, err.Error(), 500)
}
