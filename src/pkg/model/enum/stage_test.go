package enum

import (
    "testing"
)

func TestParseStage(t *testing.T) {
    for _, expected := range []Stage{StageLocal, StageAlpha, StageBeta, StageGamma, StageProd} {
        stage, err := ParseStage(expected.String())
        if err != nil {
            t.Errorf("Expected no error for %s, but got %v", expected, err)
        }
        if stage != expected {
            t.Errorf("Expected %s, but got %s", expected, stage)
        }
    }

    _, err := ParseStage("staging")
    if err == nil {
        t.Errorf("Expected error for unknown stage")
    }
}
