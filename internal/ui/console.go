package ui

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/yourusername/video-downloader-go/internal/domain"
)

// Console implements domain.Presenter on top of pterm.
type Console struct{}

// NewConsole creates the pterm-backed presenter.
func NewConsole() *Console {
	return &Console{}
}

// Banner prints the welcome panel.
func (c *Console) Banner() {
	body := pterm.Sprintf("%s\n\n%s\n%s",
		pterm.NewStyle(pterm.FgLightYellow, pterm.Bold).Sprint("🎥  SOCIAL MEDIA VIDEO DOWNLOADER  🎥"),
		pterm.FgWhite.Sprint("Download videos from 5+ platforms"),
		pterm.FgGreen.Sprint("Fast • Reliable • Easy"),
	)
	panel := pterm.DefaultBox.
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(body)
	pterm.DefaultCenter.Println(panel)
}

// Menu prints the platform selection table.
func (c *Console) Menu(catalog *domain.Catalog) {
	data := pterm.TableData{
		{"Option", "Platform", "Icon", "Status"},
	}
	for _, key := range catalog.Keys() {
		platform, ok := catalog.Get(key)
		if !ok {
			continue
		}
		data = append(data, []string{key, platform.Name, platform.Icon, pterm.FgGreen.Sprint("✓ Active")})
	}
	data = append(data, []string{domain.ExitKey, "Exit Program", "🚪", pterm.FgRed.Sprint("Exit")})

	pterm.Println()
	pterm.DefaultSection.Println("📱 Supported Platforms")
	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Render()
}

// Guide prints the per-platform usage tree: example URLs plus static tips.
func (c *Console) Guide(platform *domain.PlatformConfig) {
	root := pterm.TreeNode{
		Text: pterm.FgCyan.Sprintf("%s %s - URL Examples", platform.Icon, platform.Name),
	}
	for i, example := range platform.Examples {
		root.Children = append(root.Children, pterm.TreeNode{
			Text:     pterm.FgYellow.Sprintf("Example %d", i+1),
			Children: []pterm.TreeNode{{Text: example}},
		})
	}

	tips := pterm.TreeNode{Text: pterm.FgGreen.Sprint("💡 Tips")}
	for _, tip := range []string{
		"Copy URL directly from your browser",
		"Make sure the video is public",
		"Video will be saved in highest quality",
	} {
		tips.Children = append(tips.Children, pterm.TreeNode{Text: tip})
	}
	root.Children = append(root.Children, tips)

	pterm.Println()
	_ = pterm.DefaultTree.WithRoot(root).Render()
}

// VideoInfo prints the probed metadata table.
func (c *Console) VideoInfo(info *domain.VideoInfo) {
	data := pterm.TableData{
		{"📝 Title", orNotAvailable(info.Title)},
		{"👤 Uploader", orNotAvailable(info.Uploader)},
		{"⏱  Duration", FormatDuration(info.Duration)},
		{"👁  Views", FormatViews(info.ViewCount)},
		{"💾 File Size", FormatSize(info.FileSize)},
		{"📅 Upload Date", orNotAvailable(info.UploadDate)},
	}

	pterm.Println()
	pterm.DefaultSection.Println("📹 Video Information")
	_ = pterm.DefaultTable.
		WithBoxed().
		WithData(data).
		Render()
}

// Success prints the completion panel with the resolved output path.
func (c *Console) Success(path string) {
	body := pterm.Sprintf("%s\n\n%s\n   %s\n\n%s",
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("✅ Download Completed Successfully!"),
		pterm.FgCyan.Sprint("📁 File Location:"),
		path,
		pterm.FgYellow.Sprint("🎉 Ready to watch!"),
	)
	pterm.Println()
	pterm.Println(pterm.DefaultBox.
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Sprint(body))
}

// Failure prints the error panel with static troubleshooting tips.
func (c *Console) Failure(message string) {
	body := pterm.Sprintf("%s\n\n%s\n%s\n\n%s\n%s",
		pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("❌ Download Failed"),
		pterm.FgYellow.Sprint("Error Details:"),
		message,
		pterm.FgCyan.Sprint("🔧 Troubleshooting Tips:"),
		strings.Join([]string{
			"• Verify the URL is correct and complete",
			"• Check if the video is public and accessible",
			"• Ensure you have stable internet connection",
			"• Try updating yt-dlp to its latest version",
			"• Some platforms may require authentication",
		}, "\n"),
	)
	pterm.Println()
	pterm.Println(pterm.DefaultBox.
		WithBoxStyle(pterm.NewStyle(pterm.FgRed)).
		Sprint(body))
}

// Statistics prints the session download listing.
func (c *Console) Statistics(titles []string) {
	data := pterm.TableData{
		{"#", "Video Title"},
	}
	for i, title := range titles {
		data = append(data, []string{strconv.Itoa(i + 1), Truncate(title, 50)})
	}

	pterm.Println()
	pterm.DefaultSection.Println("📊 Download Statistics")
	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Render()
}

// Farewell prints the exit panel.
func (c *Console) Farewell() {
	body := pterm.FgYellow.Sprint(
		"👋 Thank you for using Video Downloader!\n⭐ If you like it, star us on GitHub!")
	pterm.Println()
	pterm.Println(pterm.DefaultBox.
		WithBoxStyle(pterm.NewStyle(pterm.FgYellow)).
		Sprint(body))
	pterm.Println()
}

// Notice prints a short warning line.
func (c *Console) Notice(message string) {
	pterm.Warning.Println(message)
}

// Working shows a spinner and returns the function that stops it.
func (c *Console) Working(text string) func() {
	spinner, err := pterm.DefaultSpinner.Start(text)
	if err != nil {
		return func() {}
	}
	return func() { _ = spinner.Stop() }
}

// SelectPlatform prompts for a selection key, re-asking until the answer is
// one of keys. An empty answer takes the default.
func (c *Console) SelectPlatform(keys []string, defaultKey string) string {
	for {
		answer, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(defaultKey).
			Show("🎯 Select a platform")
		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = defaultKey
		}
		for _, key := range keys {
			if answer == key {
				return answer
			}
		}
		pterm.Error.Printfln("Please choose one of: %s", strings.Join(keys, ", "))
	}
}

// AskURL prompts for a video URL.
func (c *Console) AskURL() string {
	answer, _ := pterm.DefaultInteractiveTextInput.Show("🔗 Enter video URL")
	return strings.TrimSpace(answer)
}

// ConfirmDownload asks to proceed with the download, defaulting to yes.
func (c *Console) ConfirmDownload() bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("⬇  Proceed with download?")
	return ok
}

// ConfirmMismatch warns that the URL looks like another platform and asks
// whether to continue anyway, defaulting to no.
func (c *Console) ConfirmMismatch(detected, selected string) bool {
	pterm.Warning.Printfln("URL appears to be from %s, not %s", detected, selected)
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show("Continue anyway?")
	return ok
}

// ConfirmContinue asks whether to download another video, defaulting to yes.
func (c *Console) ConfirmContinue() bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("🔄 Download another video?")
	return ok
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
