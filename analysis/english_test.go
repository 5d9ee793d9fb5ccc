package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChiSquared(t *testing.T) {
	var uniform [26]float64
	for i := range uniform {
		uniform[i] = 1.0 / 26
	}

	assert.Zero(t, ChiSquared(englishFreq, englishFreq))
	assert.Greater(t, ChiSquared(uniform, englishFreq), 0.0)
}

func TestScoreEnglish(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name    string
		args    args
		wantInf bool
	}{
		{name: "empty text is unscorable", args: args{text: ""}, wantInf: true},
		{name: "plain english", args: args{text: "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreEnglish(tt.args.text)
			if math.IsInf(got, 1) != tt.wantInf {
				t.Errorf("ScoreEnglish() = %v, wantInf %v", got, tt.wantInf)
			}
		})
	}
}

func TestScoreEnglishRanksEnglishLower(t *testing.T) {
	english := "ONSECONDTHOUGHTLETUSNOTGOTOCAMELOTITISASILLYPLACE"
	junk := "QQQQXXXXZZZZJJJJQQQQXXXXZZZZJJJJQQQQXXXXZZZZJJJJQ"

	assert.Less(t, ScoreEnglish(english), ScoreEnglish(junk))
}
