package enum

import "fmt"

type Stage int

const (
    StageLocal Stage = iota
    StageAlpha
    StageBeta
    StageGamma
    StageProd
)

func (s Stage) String() string {
    return []string{
        "local",
        "alpha",
        "beta",
        "gamma",
        "prod",
    }[s]
}

func ParseStage(s string) (Stage, error) {
    for stage := StageLocal; stage <= StageProd; stage++ {
        if stage.String() == s {
            return stage, nil
        }
    }
    return StageLocal, fmt.Errorf("unknown stage: %s", s)
}
