package interview

import (
	"fmt"
	"os"
	"strings"
)

var defaultQuestions = []string{
	"Расскажите о вашем опыте работы с Docker и контейнеризацией",
	"Как вы организуете процесс CI/CD в своих проектах?",
	"Какие методы мониторинга и логирования вы используете?",
	"Расскажите о вашем опыте работы с облачными платформами",
}

// QuestionSet is a fixed ordered list of questions shared read-only by all
// sessions.
type QuestionSet struct {
	questions []string
}

// LoadQuestionSet reads one question per non-empty line from path. An empty
// path yields the built-in question list.
func LoadQuestionSet(path string) (*QuestionSet, error) {
	if path == "" {
		return &QuestionSet{questions: defaultQuestions}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var questions []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("questions file %s contains no questions", path)
	}
	return &QuestionSet{questions: questions}, nil
}

func (q *QuestionSet) At(i int) (string, bool) {
	if i < 0 || i >= len(q.questions) {
		return "", false
	}
	return q.questions[i], true
}

func (q *QuestionSet) Len() int {
	return len(q.questions)
}
