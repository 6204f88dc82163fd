// internal/generation/composer.go
package generation

import (
	"bytes"
	"strings"
	"text/template"
)

// promptTemplate はモデルに渡す固定の指示文。
// 5〜10件の {question, answer} オブジェクトをJSON配列で返すよう指示する。
// 応答が配列の前後に文章を含んでも Extractor 側が許容する。
const promptTemplate = `You are a flashcard generator. Given the following content, extract 5-10 key facts and return them as JSON in this format:
[
  {"question": "...", "answer": "..."},
  ...
]
Content:
{{.Content}}
`

var compiledPromptTemplate = template.Must(template.New("flashcard").Parse(promptTemplate))

type promptData struct {
	Content string
}

// ComposePrompt はユーザー入力 (自由記述とファイル内容) から指示文を組み立てます。
// 両方が与えられた場合は prompt、空行、fileContent の順で連結し、
// 片方だけの場合はそれをそのまま使います。副作用はありません。
func ComposePrompt(prompt, fileContent string) (string, error) {
	content := joinContent(prompt, fileContent)
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyInput
	}

	var buf bytes.Buffer
	if err := compiledPromptTemplate.Execute(&buf, promptData{Content: content}); err != nil {
		// 固定テンプレート + 文字列データなので実行が失敗することはまずない
		return "", err
	}
	return buf.String(), nil
}

func joinContent(prompt, fileContent string) string {
	switch {
	case prompt != "" && fileContent != "":
		return prompt + "\n\n" + fileContent
	case fileContent != "":
		return fileContent
	default:
		return prompt
	}
}
