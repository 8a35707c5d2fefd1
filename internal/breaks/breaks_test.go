package breaks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2024-03-15 "+clock)
	require.NoError(t, err)
	return parsed
}

func TestSlot_InWindow(t *testing.T) {
	slot := Slot{Name: "Pausa 20", Start: "11:30", End: "14:00", Duration: 20 * time.Minute}

	assert.False(t, slot.InWindow(at(t, "11:29")))
	assert.True(t, slot.InWindow(at(t, "11:30")), "window start is inclusive")
	assert.True(t, slot.InWindow(at(t, "13:59")))
	assert.False(t, slot.InWindow(at(t, "14:00")), "window end is exclusive")
}

func TestDue_FirstUntakenSlotInWindow(t *testing.T) {
	st := NewState(DefaultSlots)

	assert.Nil(t, st.Due(at(t, "08:00")), "before any window")

	due := st.Due(at(t, "09:30"))
	require.NotNil(t, due)
	assert.Equal(t, "Pausa 10 (1ª)", due.Name)

	// Taken slots stop being due.
	_, err := st.Start(due.Name, at(t, "09:30"))
	require.NoError(t, err)
	st.Finish()
	assert.Nil(t, st.Due(at(t, "09:45")))
}

func TestDue_SuppressedWhileABreakRuns(t *testing.T) {
	st := NewState(DefaultSlots)
	_, err := st.Start("Pausa 10 (1ª)", at(t, "09:00"))
	require.NoError(t, err)

	assert.Nil(t, st.Due(at(t, "09:05")))
}

func TestStart_Lifecycle(t *testing.T) {
	st := NewState(DefaultSlots)
	now := at(t, "11:40")

	endsAt, err := st.Start("Pausa 20", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(20*time.Minute), endsAt)

	name, got, running := st.Running()
	require.True(t, running)
	assert.Equal(t, "Pausa 20", name)
	assert.Equal(t, endsAt, got)

	assert.Equal(t, 5*time.Minute, st.Remaining(now.Add(15*time.Minute)))
	assert.Equal(t, time.Duration(0), st.Remaining(now.Add(25*time.Minute)))

	st.Finish()
	_, _, running = st.Running()
	assert.False(t, running)
	assert.True(t, st.Taken("Pausa 20"))
}

func TestStart_Errors(t *testing.T) {
	st := NewState(DefaultSlots)
	now := at(t, "09:10")

	_, err := st.Start("Pausa 10 (1ª)", now)
	require.NoError(t, err)

	_, err = st.Start("Pausa 20", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "em andamento")

	st.Finish()
	_, err = st.Start("Pausa 10 (1ª)", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já foi realizada")

	_, err = st.Start("Pausa 99", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não existe")
}

func TestClear_ResetsTakenAndRunning(t *testing.T) {
	st := NewState(DefaultSlots)
	_, err := st.Start("Pausa 20", at(t, "11:40"))
	require.NoError(t, err)
	st.Finish()

	st.Clear()
	assert.False(t, st.Taken("Pausa 20"))
	_, _, running := st.Running()
	assert.False(t, running)
}
