package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

var waitGroup sync.WaitGroup

func loopGetLogger(t *testing.T, routineNum int) {
	defer waitGroup.Done()
	for i := 0; i < 1000; i++ {
		logger1 := GetLogger()
		if logger1 == nil {
			t.Errorf("GetLogger() = nil in goroutine %d, expected a non-nil logger", routineNum)
		}
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}

	waitGroup.Add(2)
	go loopGetLogger(t, 1)
	go loopGetLogger(t, 2)
	waitGroup.Wait()
}

func TestSetLevelString(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("SetLevelString(warn) returned %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("GlobalLevel() = %v, expected %v", zerolog.GlobalLevel(), zerolog.WarnLevel)
	}

	if err := SetLevelString("loud"); err == nil {
		t.Errorf("SetLevelString(loud) returned nil, expected an error")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("GlobalLevel() changed to %v after a bad level", zerolog.GlobalLevel())
	}
}
