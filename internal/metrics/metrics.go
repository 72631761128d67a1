package metrics

import (
	"sync"
	"time"
)

// Metrics holds process-wide interview counters. All methods are safe for
// concurrent use from connection goroutines.
type Metrics struct {
	mu                    sync.Mutex
	interviewsStarted     int64
	interviewsCompleted   int64
	questionsAsked        int64
	speechCallsTotal      int64
	speechCallsSuccessful int64
	lastUpdate            time.Time
}

type Snapshot struct {
	InterviewsStarted     int64
	InterviewsCompleted   int64
	QuestionsAsked        int64
	SpeechCallsTotal      int64
	SpeechCallsSuccessful int64
	LastUpdate            time.Time
}

func New() *Metrics {
	return &Metrics{lastUpdate: time.Now()}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsStarted++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsCompleted++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementQuestionsAsked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionsAsked++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementSpeechCall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speechCallsTotal++
	if success {
		m.speechCallsSuccessful++
	}
	m.lastUpdate = time.Now()
}

func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		InterviewsStarted:     m.interviewsStarted,
		InterviewsCompleted:   m.interviewsCompleted,
		QuestionsAsked:        m.questionsAsked,
		SpeechCallsTotal:      m.speechCallsTotal,
		SpeechCallsSuccessful: m.speechCallsSuccessful,
		LastUpdate:            m.lastUpdate,
	}
}
