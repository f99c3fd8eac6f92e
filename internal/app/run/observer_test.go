package run

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/rawsync/internal/config"
	"github.com/John-Robertt/rawsync/internal/domain"
)

type recordObserver struct {
	startCalls int
	scanned    [2]int
	pairs      []int
	statuses   []string
}

func (o *recordObserver) OnStart(eff config.EffectiveConfig) { o.startCalls++ }

func (o *recordObserver) OnScanDone(rawCount, jpgCount int, dur time.Duration) {
	o.scanned = [2]int{rawCount, jpgCount}
}

func (o *recordObserver) OnPairDone(idx, total int, res domain.ItemResult) {
	o.pairs = append(o.pairs, idx)
	o.statuses = append(o.statuses, res.Status)
}

func TestExecute_EmitsEvents(t *testing.T) {
	dir := setupDir(t, map[string]string{
		"a.raf":  "r1",
		"b.raf":  "r2",
		"a.jpg":  "j1",
		"zz.jpg": "j2",
	})

	obs := &recordObserver{}
	_, err := Execute(config.EffectiveConfig{Dir: dir}, nil, obs)
	require.NoError(t, err)

	assert.Equal(t, 1, obs.startCalls)
	assert.Equal(t, [2]int{2, 2}, obs.scanned)
	assert.Equal(t, []int{1, 2}, obs.pairs)
	assert.Equal(t, []string{domain.StatusUnchanged, domain.StatusRenamed}, obs.statuses)
}

func TestExecute_CountMismatch_NoPairEvents(t *testing.T) {
	dir := setupDir(t, map[string]string{"a.raf": "r1"})

	obs := &recordObserver{}
	_, err := Execute(config.EffectiveConfig{Dir: dir}, nil, obs)
	require.Error(t, err)
	assert.Equal(t, [2]int{1, 0}, obs.scanned)
	assert.Empty(t, obs.pairs)
}

func TestExecute_NilObserver_SameResult(t *testing.T) {
	files := map[string]string{"IMG_1.raf": "r", "Lake.jpg": "j"}
	a, errA := Execute(config.EffectiveConfig{Dir: setupDir(t, files)}, nil, nil)
	b, errB := Execute(config.EffectiveConfig{Dir: setupDir(t, files)}, nil, &recordObserver{})
	require.NoError(t, errA)
	require.NoError(t, errB)

	// 目录与时间不同；只比较结果形状。
	a.Dir, b.Dir = "", ""
	a.StartedAt, a.FinishedAt = time.Time{}, time.Time{}
	b.StartedAt, b.FinishedAt = time.Time{}, time.Time{}
	for i := range a.Items {
		a.Items[i].Raw, a.Items[i].JPG, a.Items[i].Dst = "", "", ""
		b.Items[i].Raw, b.Items[i].JPG, b.Items[i].Dst = "", "", ""
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("observer 不应改变结果：\nnil=%+v\nobs=%+v", a, b)
	}
}
