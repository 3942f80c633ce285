package discord

import (
	"fmt"
	"sort"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// Embed accent colors per growth tier.
const (
	colorHighGrowth   = 0x00FF7F // Spring Green
	colorMediumGrowth = 0xFFD700 // Gold
	colorLowGrowth    = 0xFF6347 // Tomato
	colorDefault      = 0x1E90FF // Dodger Blue
)

// maxTopItems caps the best-sellers list rendered into an embed.
const maxTopItems = 6

// growthColor picks the embed color for a growth percentage.
func growthColor(growth float64) int {
	switch {
	case growth >= 20:
		return colorHighGrowth
	case growth >= 5:
		return colorMediumGrowth
	case growth < 0:
		return colorLowGrowth
	default:
		return colorDefault
	}
}

// TopPerformers returns the best-selling items sorted by sales descending,
// capped at the render limit. A nil list yields an empty slice.
func TopPerformers(items []models.TopItem) []models.TopItem {
	sorted := make([]models.TopItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sales > sorted[j].Sales
	})
	if len(sorted) > maxTopItems {
		sorted = sorted[:maxTopItems]
	}
	return sorted
}

// BuildStatsMessage renders an uploaded stats document into a webhook
// message. Missing numeric fields render as 0 and a missing top-items list
// renders the "no superstar" placeholder.
func (n *Notifier) BuildStatsMessage(stats models.SalesStats) Message {
	growth := stats.GrowthPercentage
	period := stats.DataPeriod
	if period == "" {
		period = "Current Period"
	}

	var title, description string
	if stats.UploadType == "growth" {
		title = fmt.Sprintf("🎉 **%s Performance Report!**", period)
		description = "**✨ New monthly insights unlocked with growth analysis!**\n\n*Month-over-month magic calculated ⭐*"
	} else {
		title = fmt.Sprintf("🎊 **%s Monthly Update!**", period)
		description = "**🌟 Fresh monthly stats are in!**\n\n*Latest ROBLOX performance data processed 🚀*"
	}

	var growthDisplay, growthEmoji, growthCelebration string
	switch {
	case growth > 0:
		growthDisplay = fmt.Sprintf("+%g%%", growth)
		growthEmoji = "🚀"
		growthCelebration = "Crushing it!"
	case growth < 0:
		growthDisplay = fmt.Sprintf("%g%%", growth)
		growthEmoji = "📉"
		growthCelebration = "Room to grow!"
	default:
		growthDisplay = "0%"
		growthEmoji = "➡️"
		growthCelebration = "Steady pace!"
	}

	topItemsText := "No superstar yet! 🌟"
	if top := TopPerformers(stats.TopItems); len(top) > 0 {
		topItemsText = fmt.Sprintf("🏆 %s (%s sales)",
			EscapeMarkdown(top[0].Name), FormatCount(top[0].Sales))
	}

	embed := Embed{
		Title:       title,
		Description: description,
		Color:       growthColor(growth),
		Fields: []EmbedField{
			{
				Name:   "💰 **Total Revenue**",
				Value:  fmt.Sprintf("`%s Robux`\n*Cha-ching! 💸*", FormatCount(int64(stats.TotalRevenue))),
				Inline: true,
			},
			{
				Name:   "🛍️ **Total Sales**",
				Value:  fmt.Sprintf("`%s sales`\n*Items flying off shelves! 📦*", FormatCount(stats.TotalSales)),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("%s **Growth**", growthEmoji),
				Value:  fmt.Sprintf("`%s`\n*%s*", growthDisplay, growthCelebration),
				Inline: true,
			},
			{
				Name:   "📅 **Data Period**",
				Value:  fmt.Sprintf("`%s`\n*Time period tracked 📊*", EscapeMarkdown(period)),
				Inline: true,
			},
			{
				Name:   "🎨 **Top Performer**",
				Value:  fmt.Sprintf("`%s`", topItemsText),
				Inline: true,
			},
		},
		Footer: &EmbedFooter{Text: fmt.Sprintf("Monthly Stats Tracker • %s", n.creatorName)},
	}

	if n.creatorUserID != "" {
		embed.Author = &EmbedAuthor{
			Name: fmt.Sprintf("%s (%s)", n.creatorName, n.creatorUserID),
			URL:  fmt.Sprintf("https://www.roblox.com/users/%s/profile", n.creatorUserID),
		}
	}

	var content string
	if stats.UploadType == "growth" {
		switch {
		case growth > 15:
			content = fmt.Sprintf("🎊 **%s Results Are Incredible!**", period)
		case growth > 0:
			content = fmt.Sprintf("🎉 **%s Performance Update!**", period)
		default:
			content = fmt.Sprintf("📊 **%s Monthly Report!**", period)
		}
	} else {
		content = fmt.Sprintf("⭐ **%s Stats Drop!**", period)
	}

	msg := Message{
		Content: content,
		Embeds:  []Embed{embed},
	}
	n.applyMention(&msg, n.statsRoleID)
	msg.Clamp()
	return msg
}
