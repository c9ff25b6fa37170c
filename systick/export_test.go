package systick

func release() {
	taken.Store(false)
}
