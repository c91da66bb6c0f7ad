package util

// environment variable keys
const (
    StageEnvKey = "STAGE"
)

// reply messages
const (
    LocationRequestMessage  = "位置情報が欲しいんじゃー"
    SearchFailedMessage     = "グルナビAPIのエラーにより、お店が検索できませんでした"
    NoRamenShopFoundMessage = "麺系のお店が見つかりませんでした。"
)

// ramen shop message layout
const (
    RamenNameHeading    = "■名前"
    RamenUrlHeading     = "■URL"
    RamenAddressHeading = "■住所"
    RamenHolidayHeading = "■定休日"
    NoInformation       = "情報なし"
    PoweredByGnavi      = "Powered by ぐるなび"
)

// GnaviNoResultErrorCode is returned by the Gnavi search API when nothing matched the query.
const GnaviNoResultErrorCode = 600

// LINE rejects reply calls carrying more messages than this.
const LineMaxReplyMessages = 5
