// пакет linter собственный анализатор для multichecker: запрещает вызовы нежелательных функций
package linter

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const (
	// notRecomendedText текст сообщения, если в правиле он не задан
	notRecomendedText = "not recommended function"
)

// Rule правило: где нельзя вызывать функцию Function
type Rule struct {
	// Pkg в каких пакетах нельзя использовать. если не указано ничего, ищется во всех пакетах
	Pkg string
	// ExceptPkg пакет, в котором вызов разрешен. имеет смысл только с пустым Pkg
	ExceptPkg string
	// FromFunction из какой функции нельзя вызывать. если не указано ничего, ищется во всех функциях
	FromFunction string
	// Function функция не рекомендованная к использованию
	Function Func
	// Message текст сообщения анализатора
	Message string
}

// Func функция не рекомендованная к использованию
type Func struct {
	// Pkg имя пакета функции. Если ничего не указано, то только название функции будет использовано
	Pkg string
	// Name имя функции
	Name string
}

// catalogOnly запросы к внешним сервисам делает только клиент каталога
func catalogOnly(pkg, name string) Rule {
	return Rule{
		ExceptPkg: "catalog",
		Function:  Func{Pkg: pkg, Name: name},
		Message:   "запросы к внешним сервисам только через пакет catalog",
	}
}

// DefaultRules правила по умолчанию
var DefaultRules = []Rule{
	{
		// в пакете main нельзя использовать os.Exit в функции main
		Pkg:          "main",
		FromFunction: "main",
		Function:     Func{Pkg: "os", Name: "Exit"},
		Message:      "прямой вызов os.Exit в функции main",
	},
	catalogOnly("http", "Get"),
	catalogOnly("http", "Head"),
	catalogOnly("http", "Post"),
	catalogOnly("http", "PostForm"),
	catalogOnly("resty", "New"),
}

// New создание анализатора с правилами rules. если правила не переданы, используются DefaultRules
func New(rules ...Rule) *analysis.Analyzer {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &analysis.Analyzer{
		Name: "notrecomendedfuncs",
		Doc:  "Checking for undesirability of using functions",
		Run: func(pass *analysis.Pass) (interface{}, error) {
			return run(pass, rules)
		},
	}
}

func run(pass *analysis.Pass, rules []Rule) (interface{}, error) {
	for _, rule := range rules {
		// если по каким-либо причинам не было передано имя функции, то пропускаем
		if rule.Function.Name == "" {
			continue
		}
		msg := rule.Message
		if msg == "" {
			msg = notRecomendedText
		}
		for _, file := range pass.Files {
			// тесты не проверяем
			if strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go") {
				continue
			}
			ast.Inspect(file, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.File:
					if rule.Pkg != "" && x.Name.Name != rule.Pkg {
						return false
					}
					if rule.ExceptPkg != "" && x.Name.Name == rule.ExceptPkg {
						return false
					}
				case *ast.FuncDecl:
					if rule.FromFunction != "" && x.Name.Name != rule.FromFunction {
						return false
					}
				case *ast.CallExpr:
					if called(x, rule.Function) {
						pass.Reportf(x.Pos(), "%s", msg)
					}
				}
				return true
			})
		}
	}
	return nil, nil
}

// called вызывается ли в x функция f
func called(x *ast.CallExpr, f Func) bool {
	switch y := x.Fun.(type) {
	case *ast.Ident:
		// это для функции без пакета
		return f.Pkg == "" && y.Name == f.Name
	case *ast.SelectorExpr:
		pkg := ""
		if pkgID, ok := y.X.(*ast.Ident); ok {
			pkg = pkgID.Name
		}
		return pkg == f.Pkg && y.Sel.Name == f.Name
	}
	return false
}
