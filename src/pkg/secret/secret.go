package secret

import (
    "encoding/json"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/secret/secretModel"
    "github.com/aws/aws-secretsmanager-caching-go/secretcache"
    "github.com/cenkalti/backoff/v4"
    "go.uber.org/zap"
)

type secretStringGetter interface {
    GetSecretString(secretId string) (string, error)
}

type SecretStore struct {
    getter  secretStringGetter
    backOff func() backoff.BackOff
    log     *zap.SugaredLogger
}

func NewSecretStore(logger *zap.SugaredLogger) (*SecretStore, error) {
    secretCache, err := secretcache.New()
    if err != nil {
        logger.Error("Error creating secret cache during bootstrap: ", err)
        return nil, err
    }

    return &SecretStore{
        getter:  secretCache,
        backOff: defaultBackOff,
        log:     logger,
    }, nil
}

// GetSecrets reads the JSON secret document. Retrying is limited to cold start; request handling never calls this.
func (s *SecretStore) GetSecrets(secretName string) (secretModel.Secrets, error) {
    var result string
    err := backoff.Retry(func() error {
        var err error
        result, err = s.getter.GetSecretString(secretName)
        if err != nil {
            s.log.Warnf("Error getting secret %s. Retrying: %v", secretName, err)
        }
        return err
    }, s.backOff())
    if err != nil {
        s.log.Error("Error getting secrets during bootstrap: ", err)
        return secretModel.Secrets{}, err
    }

    var secret secretModel.Secrets
    err = json.Unmarshal([]byte(result), &secret)
    if err != nil {
        s.log.Error("Error unmarshalling secrets during bootstrap: ", err)
        return secretModel.Secrets{}, err
    }
    return secret, nil
}

func defaultBackOff() backoff.BackOff {
    return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
}

const maxRetries = 3
