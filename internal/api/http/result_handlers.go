package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizado/quizado/internal/result"

	"github.com/go-chi/chi/v5"
)

func ListResultsHandler(store result.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if results == nil {
			results = []result.Result{}
		}
		writeJSON(w, results)
	}
}

func GetResultHandler(store result.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "resultID")
		res, err := store.Get(r.Context(), id)
		if err != nil {
			statusError(w, err, result.ErrNotFound)
			return
		}
		writeJSON(w, res)
	}
}

// CreateResultHandler accepts an externally graded record (the local-storage
// client syncing its history). Server-side grading goes through the submit
// endpoint instead.
func CreateResultHandler(store result.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res result.Result
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if res.QuizName == "" || res.Total < 1 || res.Score < 0 {
			http.Error(w, "quiz_name, score and total are required", 400)
			return
		}
		saved, err := store.Save(r.Context(), res)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSONStatus(w, http.StatusCreated, saved)
	}
}

func DeleteResultHandler(store result.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "resultID")
		if err := store.Delete(r.Context(), id); err != nil {
			statusError(w, err, result.ErrNotFound)
			return
		}
		writeJSON(w, map[string]string{"message": "result deleted"})
	}
}

func DeleteAllResultsHandler(store result.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := store.DeleteAll(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]int{"deleted": n})
	}
}
