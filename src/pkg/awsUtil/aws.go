package awsUtil

import (
    "errors"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/ssm"
    "github.com/aws/aws-sdk-go/service/ssm/ssmiface"
    "go.uber.org/zap"
)

type Aws struct {
    log       *zap.SugaredLogger
    ssmClient ssmiface.SSMAPI
}

func NewAws(region string, logger *zap.SugaredLogger) (*Aws, error) {
    sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
    if err != nil {
        logger.Error("Unable to create AWS session: ", err)
        return nil, err
    }

    return &Aws{
        log:       logger,
        ssmClient: ssm.New(sess),
    }, nil
}

// GetParameter reads a (possibly encrypted) value from SSM parameter store
func (a *Aws) GetParameter(name string) (string, error) {
    response, err := a.ssmClient.GetParameter(&ssm.GetParameterInput{
        Name:           aws.String(name),
        WithDecryption: aws.Bool(true),
    })
    if err != nil {
        a.log.Errorf("Unable to retrieve parameter %s from SSM parameter store: %v", name, err)
        return "", err
    }

    if response.Parameter == nil || util.IsEmptyString(aws.StringValue(response.Parameter.Value)) {
        a.log.Errorf("Parameter %s is empty", name)
        return "", errors.New("parameter " + name + " is empty")
    }

    return aws.StringValue(response.Parameter.Value), nil
}
