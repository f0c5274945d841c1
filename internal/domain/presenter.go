package domain

// Presenter renders the interactive surfaces and gathers user input. Render
// methods have no side effects beyond writing to the terminal; prompt methods
// block until the user answers.
type Presenter interface {
	Banner()
	Menu(catalog *Catalog)
	Guide(platform *PlatformConfig)
	VideoInfo(info *VideoInfo)
	Success(path string)
	Failure(message string)
	Statistics(titles []string)
	Farewell()
	Notice(message string)

	// Working shows a busy indicator and returns a function that removes it.
	Working(text string) func()

	// SelectPlatform asks for one of keys, re-asking until the answer is valid.
	SelectPlatform(keys []string, defaultKey string) string
	AskURL() string
	ConfirmDownload() bool
	ConfirmMismatch(detected, selected string) bool
	ConfirmContinue() bool
}
