package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	kerrors "github.com/go-kratos/kratos/v2/errors"
)

const helpText = `Available commands:
/convert <amount> <from> <to>  e.g. /convert 10 usd inr
/weather <city>
/define <word>
/sgpa`

const maxDefinitions = 3

func (b *Bot) handleConvert(ctx context.Context, args []string) string {
	if len(args) != 3 {
		return "Usage: /convert <amount> <from> <to>"
	}
	res, err := b.currency.Convert(ctx, args[0], args[1], args[2])
	if err != nil {
		return b.errorText(err)
	}
	return formatConversion(res)
}

func (b *Bot) handleWeather(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Usage: /weather <city>"
	}
	w, err := b.weather.Brief(ctx, strings.Join(args, " "))
	if err != nil {
		return b.errorText(err)
	}
	return formatWeather(w)
}

func (b *Bot) handleDefine(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "Usage: /define <word>"
	}
	entries, err := b.dictionary.Define(ctx, args[0])
	if err != nil {
		return b.errorText(err)
	}
	return formatDefinition(entries)
}

func (b *Bot) handleSGPA(ctx context.Context, args []string) string {
	summary, err := b.course.Summary(ctx)
	if err != nil {
		return b.errorText(err)
	}
	return formatSGPA(summary)
}

// errorText 业务错误直接把信息告诉用户，其他错误只记日志
func (b *Bot) errorText(err error) string {
	e := kerrors.FromError(err)
	if e.Reason != "" && e.Code < 500 {
		return e.Message
	}
	b.l.Error("机器人命令执行失败", logger.Error(err))
	return "Something went wrong, please try again later."
}

func formatConversion(c domain.Conversion) string {
	return fmt.Sprintf("%g %s = %.2f %s\nRate: %g", c.Amount, c.From, c.ConvertedAmount, c.To, c.ConversionRate)
}

func formatWeather(w domain.WeatherBrief) string {
	var sb strings.Builder
	sb.WriteString(w.Name)
	if len(w.Weather) > 0 {
		sb.WriteString(": ")
		sb.WriteString(w.Weather[0].Description)
	}
	fmt.Fprintf(&sb, "\nTemperature: %.1f°C (feels like %.1f°C)", w.Main.Temp, w.Main.FeelsLike)
	fmt.Fprintf(&sb, "\nHumidity: %d%%", w.Main.Humidity)
	fmt.Fprintf(&sb, "\nWind: %.1f m/s", w.Wind.Speed)
	return sb.String()
}

func formatDefinition(entries []domain.DictionaryEntry) string {
	if len(entries) == 0 {
		return "Word not found!"
	}
	e := entries[0]
	var sb strings.Builder
	sb.WriteString(e.Word)
	if e.Phonetic != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Phonetic)
	}
	n := 0
	for _, m := range e.Meanings {
		for _, d := range m.Definitions {
			if n == maxDefinitions {
				return sb.String()
			}
			n++
			fmt.Fprintf(&sb, "\n%d. (%s) %s", n, m.PartOfSpeech, d.Definition)
		}
	}
	return sb.String()
}

func formatSGPA(s domain.SGPASummary) string {
	if len(s.Courses) == 0 {
		return "No courses yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SGPA: %.2f (%g credits)", s.SGPA, s.TotalCredits)
	for _, c := range s.Courses {
		fmt.Fprintf(&sb, "\n%s: grade %d, %g credits", c.Name, c.Grade, c.Credits)
	}
	return sb.String()
}
