// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/grid/unit"
)

func TestMetric(t *testing.T) {
	tests := []struct {
		m      unit.Metric
		dp, sp int
	}{
		{unit.Metric{}, 12, 12},
		{unit.Metric{PxPerDp: 2, PxPerSp: 3}, 24, 36},
		{unit.Metric{PxPerDp: 1.5, PxPerSp: 1.25}, 18, 15},
	}
	for _, test := range tests {
		if got := test.m.Dp(12); got != test.dp {
			t.Errorf("%+v: got %d px for 12dp, want %d", test.m, got, test.dp)
		}
		if got := test.m.Sp(12); got != test.sp {
			t.Errorf("%+v: got %d px for 12sp, want %d", test.m, got, test.sp)
		}
	}
}

func TestMetricRounding(t *testing.T) {
	m := unit.Metric{PxPerDp: 1.5}
	if got := m.Dp(3); got != 5 {
		t.Errorf("got %d px for 3dp at 1.5, want 5", got)
	}
}
