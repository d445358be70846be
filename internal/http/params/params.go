// Package params разбирает параметры пути chi.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
)

// Int64 возвращает числовой параметр пути name.
func Int64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

// Int возвращает неотрицательный числовой параметр пути name.
func Int(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s: negative", name)
	}
	return v, nil
}

// String возвращает непустой строковый параметр пути name в раскодированном виде.
func String(r *http.Request, name string) (string, error) {
	v, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	if v == "" {
		return "", errors.New("empty " + name)
	}
	return v, nil
}
