package handler

import (
	"net/http"
	"net/url"
)

func Breeds() (*http.Response, error) {
	return http.Get("http://localhost/dogs/breeds") // want "запросы к внешним сервисам только через пакет catalog"
}

func Login() (*http.Response, error) {
	return http.PostForm("http://localhost/auth/login", url.Values{}) // want "запросы к внешним сервисам только через пакет catalog"
}

func Handler() http.Handler {
	return http.NewServeMux()
}
