package ramenUtil

import (
    "context"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/model"
    "github.com/NoodleFinder/LocationHandlers/src/pkg/util"
    "strings"
)

type urlShortener interface {
    Shorten(ctx context.Context, longUrl string) string
}

type Formatter struct {
    shortener urlShortener
}

func NewFormatter(shortener urlShortener) *Formatter {
    return &Formatter{
        shortener: shortener,
    }
}

// FormatRestaurant renders one search hit as a reply text block:
//
//	■名前
//	<name>
//
//	■URL
//	<shortened url>
//
//	■住所
//	<address>
//
//	■定休日
//	<holiday>
//
//	Powered by ぐるなび
//
// Each empty field independently renders as 情報なし.
func (f *Formatter) FormatRestaurant(ctx context.Context, restaurant model.Restaurant) string {
    var sb strings.Builder

    writeField(&sb, util.RamenNameHeading, orNoInformation(restaurant.Name, ReplaceLineBreakMarkup))
    writeField(&sb, util.RamenUrlHeading, orNoInformation(restaurant.Url, func(longUrl string) string {
        return f.shortener.Shorten(ctx, longUrl)
    }))
    writeField(&sb, util.RamenAddressHeading, orNoInformation(restaurant.Address, ReplaceLineBreakMarkup))
    writeField(&sb, util.RamenHolidayHeading, orNoInformation(restaurant.Holiday, ReplaceLineBreakMarkup))
    sb.WriteString(util.PoweredByGnavi)

    return sb.String()
}

func writeField(sb *strings.Builder, heading string, value string) {
    sb.WriteString(heading)
    sb.WriteString("\n")
    sb.WriteString(value)
    sb.WriteString("\n\n")
}

func orNoInformation(value string, transform func(string) string) string {
    if util.IsEmptyString(value) {
        return util.NoInformation
    }
    return transform(value)
}

var lineBreakMarkupReplacer = strings.NewReplacer(
    "<br>", "\n",
    "<BR>", "\n",
    "<br/>", "\n",
    "<BR/>", "\n",
    "<br />", "\n",
    "<BR />", "\n",
)

// ReplaceLineBreakMarkup turns the <br> markup Gnavi sometimes embeds in text fields into real newlines
func ReplaceLineBreakMarkup(s string) string {
    return lineBreakMarkupReplacer.Replace(s)
}
