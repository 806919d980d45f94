package catalog

import "net/http"

func Breeds() (*http.Response, error) {
	return http.Get("http://localhost/dogs/breeds")
}
