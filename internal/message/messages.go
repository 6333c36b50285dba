// Package message はmessageId→文言テンプレートの読み取り専用テーブル。
// 起動時に同梱CSVから一度だけロードし、以後は参照のみ。
package message

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// メッセージID定数
const (
	I00000 = "I00000" // 情報
	I00001 = "I00001" // 処理成功
	E00000 = "E00000" // 個別エラー（本文は引数で渡す）
	E10000 = "E10000" // 入力エラー
	E11001 = "E11001" // ユーザーが存在しない
	E11002 = "E11002" // パスワード不一致
	E11004 = "E11004" // ユーザーが既に存在する
	E99999 = "E99999" // システムエラー
)

//go:embed messages.csv
var rawCSV string

var (
	loadOnce  sync.Once
	templates map[string]string

	placeholderRe = regexp.MustCompile(`\{[0-9]+\}`)
)

func load() {
	templates = make(map[string]string)

	lines := strings.Split(rawCSV, "\n")
	// 1行目はヘッダ
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		// name,messageId,message（messageはカンマを含み得るので2分割まで）
		values := strings.SplitN(line, ",", 3)
		if len(values) < 3 {
			continue
		}
		templates[values[1]] = values[2]
	}
}

// Get はmessageIdに対応する文言を返し、{0}{1}..を引数で埋める。
func Get(messageID string, args ...string) string {
	loadOnce.Do(load)

	tmpl, ok := templates[messageID]
	if !ok {
		return "No matching message."
	}

	for i, arg := range args {
		tmpl = strings.ReplaceAll(tmpl, fmt.Sprintf("{%d}", i), arg)
	}

	// 余った placeholder は消す
	tmpl = placeholderRe.ReplaceAllString(tmpl, "")
	tmpl = strings.ReplaceAll(tmpl, `\n`, "\n")

	return strings.TrimSpace(tmpl)
}
