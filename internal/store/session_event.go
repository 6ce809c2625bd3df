package store

import (
	"context"
	"fmt"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
)

func (r *eventRepo) AppendFocusSession(ctx context.Context, data FocusSessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FocusSessionEvent.Create().
		SetSequence(seqNum).
		SetSubjectID(data.SubjectID).
		SetSubjectName(data.SubjectName).
		SetMode(data.Mode).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save focus session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTopicCompletion(ctx context.Context, data TopicCompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TopicCompletionEvent.Create().
		SetSequence(seqNum).
		SetSubjectID(data.SubjectID).
		SetSubjectName(data.SubjectName).
		SetTopic(data.Topic).
		SetXpAwarded(data.XPAwarded).
		SetXpAfter(data.XPAfter).
		SetLevelAfter(data.LevelAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save topic completion event: %w", err)
	}
	return nil
}

// FocusStatsBySubject aggregates completed focus cycles per subject.
// Breaks have an empty subject_id and are excluded.
func (r *eventRepo) FocusStatsBySubject(ctx context.Context) ([]SubjectFocusStats, error) {
	var rows []struct {
		SubjectID   string `json:"subject_id"`
		SubjectName string `json:"subject_name"`
		Count       int    `json:"count"`
		SumSecs     int    `json:"sum_duration_secs"`
	}

	err := r.client.FocusSessionEvent.Query().
		Where(
			focussessionevent.ModeEQ("focus"),
			focussessionevent.SubjectIDNEQ(""),
		).
		GroupBy(focussessionevent.FieldSubjectID, focussessionevent.FieldSubjectName).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(focussessionevent.FieldDurationSecs), "sum_duration_secs"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate focus stats: %w", err)
	}

	out := make([]SubjectFocusStats, len(rows))
	for i, row := range rows {
		out[i] = SubjectFocusStats{
			SubjectID:   row.SubjectID,
			SubjectName: row.SubjectName,
			Sessions:    row.Count,
			FocusSecs:   row.SumSecs,
		}
	}
	return out, nil
}
