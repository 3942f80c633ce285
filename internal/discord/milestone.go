package discord

import (
	"fmt"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// Embed accent colors per milestone category.
const (
	colorRevenue      = 0xFFD700 // Gold
	colorSales        = 0x00FF7F // Spring Green
	colorItems        = 0x1E90FF // Dodger Blue
	colorCollectibles = 0x8A2BE2 // Blue Violet
)

type categoryStyle struct {
	emoji       string
	name        string
	unit        string
	celebration string
	color       int
}

var categoryStyles = map[string]categoryStyle{
	models.CategoryRevenue: {
		emoji:       "💰",
		name:        "Revenue Milestone",
		unit:        "Robux",
		celebration: "Money milestone achieved!",
		color:       colorRevenue,
	},
	models.CategorySales: {
		emoji:       "🛍️",
		name:        "Sales Milestone",
		unit:        "Sales",
		celebration: "Sales target smashed!",
		color:       colorSales,
	},
	models.CategoryItems: {
		emoji:       "🎨",
		name:        "Item Release Milestone",
		unit:        "Items",
		celebration: "Creation milestone unlocked!",
		color:       colorItems,
	},
	models.CategoryCollectibles: {
		emoji:       "💎",
		name:        "Collectible Achievement",
		unit:        "Item",
		celebration: "Limited collectible acquired!",
		color:       colorCollectibles,
	},
}

// BuildMilestoneMessage renders a completed milestone and the overall
// progress stats into a webhook message. Unknown categories fall back to
// the revenue styling.
func (n *Notifier) BuildMilestoneMessage(milestone models.Milestone, progress models.MilestoneProgress) Message {
	style, ok := categoryStyles[milestone.Category]
	if !ok {
		style = categoryStyles[models.CategoryRevenue]
	}

	description := EscapeMarkdown(milestone.Description)

	var achievement string
	if milestone.Category == models.CategoryCollectibles {
		// Collectibles show the item name instead of a target number
		achievement = fmt.Sprintf("`%s`", description)
	} else {
		achievement = fmt.Sprintf("`%s %s`", FormatCount(milestone.Target), style.unit)
	}

	completed, total := progress.CategoryCompleted(milestone.Category)

	embed := Embed{
		Title:       fmt.Sprintf("🎉 **%s Unlocked!**", style.name),
		Description: fmt.Sprintf("**%s**\n\n*%s*", description, style.celebration),
		Color:       style.color,
		Fields: []EmbedField{
			{
				Name:   fmt.Sprintf("%s **Achievement**", style.emoji),
				Value:  achievement,
				Inline: true,
			},
			{
				Name:   "📊 **Category Progress**",
				Value:  fmt.Sprintf("`%d/%d completed`", completed, total),
				Inline: true,
			},
			{
				Name: "🏆 **Overall Progress**",
				Value: fmt.Sprintf("`%d/%d milestones (%d%%)`",
					progress.TotalCompleted, progress.TotalMilestones, progress.CompletionPercentage),
				Inline: false,
			},
		},
		Footer: &EmbedFooter{Text: fmt.Sprintf("Milestone Tracker • %s", n.creatorName)},
	}

	if n.creatorUserID != "" {
		embed.Author = &EmbedAuthor{
			Name: fmt.Sprintf("%s (%s)", n.creatorName, n.creatorUserID),
			URL:  fmt.Sprintf("https://www.roblox.com/users/%s/profile", n.creatorUserID),
		}
	}

	if milestone.Category == models.CategoryCollectibles && milestone.ThumbnailURL != "" {
		embed.Thumbnail = &EmbedThumbnail{URL: milestone.ThumbnailURL}
	}

	content := "🎊 **Milestone Reached!**"
	msg := Message{
		Content: content,
		Embeds:  []Embed{embed},
	}
	n.applyMention(&msg, n.milestoneRoleID)
	msg.Clamp()
	return msg
}
