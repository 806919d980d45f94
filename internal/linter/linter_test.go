package linter

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestDefaultRules(t *testing.T) {
	// функция analysistest.Run применяет анализатор к пакетам из папки testdata и проверяет ожидания
	analysistest.Run(t, analysistest.TestData(), New(), "exitmain", "handler", "catalog")
}

func TestCustomRules(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), New(Rule{FromFunction: "yrun", Function: Func{Name: "zrun"}}), "custom")
}
