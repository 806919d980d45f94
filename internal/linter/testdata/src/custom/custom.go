package custom

func zrun() {}

func yrun() {
	zrun() // want "not recommended function"
}

func xrun() {
	zrun()
}
