package browser

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Open はUIをブラウザで開きます。appWindow が真ならChrome系ブラウザの
// アプリモード（アドレスバーなしの専用ウィンドウ）を試し、見つからない
// 場合や起動に失敗した場合は既定ブラウザへフォールバックします。
func Open(url string, appWindow bool) {
	if appWindow {
		if err := openAppWindow(url); err == nil {
			return
		} else {
			log.Printf("WARN: app window launch failed, falling back to default browser: %v", err)
		}
	}
	if err := openDefaultBrowser(url); err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}

func openAppWindow(url string) error {
	bin, has := launcher.LookPath()
	if !has {
		return fmt.Errorf("Chrome系ブラウザが見つかりません")
	}

	// Leakless(false) でセキュリティソフト対策
	l := launcher.NewAppMode(url).
		Bin(bin).
		Leakless(false)
	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("アプリウィンドウの起動に失敗: %w", err)
	}

	// 接続確認だけ行い、ウィンドウはユーザーが閉じるまで生かしておく
	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("ブラウザへの接続に失敗: %w", err)
	}
	return nil
}

func openDefaultBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
