package secretModel

type Secrets struct {
    LineChannelSecret      string `json:"LineChannelSecret"`
    LineChannelAccessToken string `json:"LineChannelAccessToken"`
    SlackToken             string `json:"SlackToken"`
}
