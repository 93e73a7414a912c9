package flavor

import (
	"fmt"
	"math/rand"
	"strings"
)

// RoyalSealURL is the thumbnail stamped on every decree embed.
const RoyalSealURL = "https://imgs.search.brave.com/ybyUdUFEw0dNXKCLGu2FuNAlJpvCTxkjXZUxOSFKcMM/rs:fit:500:0:1:0/g:ce/aHR0cHM6Ly90aHVt/YnMuZHJlYW1zdGlt/ZS5jb20vYi9yb3lh/bC1kZWNyZWUtdW52/ZWlsZWQtZXhxdWlz/aXRlLWdvbGQtc2Vh/bC12aW50YWdlLXN0/YXRpb25lcnktaGFu/ZHdyaXR0ZW4tbGV0/dGVyLWV4cGxvcmUt/b3B1bGVuY2UtcmVn/YWwtc3RlcC1iYWNr/LTM1MTI2NjUwOC5q/cGc"

var prefixes = []string{
	"Hark!", "Verily,", "By mine honour,", "Prithee,", "Forsooth,", "Hear ye, hear ye!",
	"Lo and behold,", "By mine troth,", "Marry,", "Gadzooks!", "Zounds!", "By the saints,",
	"By my halidom,", "In faith,", "By my beard,", "By the rood,", "Alack,", "Alas,", "Fie!",
	"Good my lord,", "Noble sir,", "Fair lady,", "By the mass,", "Gramercy,", "Well met,",
	"God ye good den,", "What ho!", "Avaunt!", "By cock and pie,", "Odds bodikins!",
}

var suffixes = []string{
	"m'lord.", "good sir.", "fair maiden.", "noble knight.", "worthy peasant.", "gentle soul.",
	"brave warrior.", "wise sage.", "royal subject.", "courtier.", "squire.", "yeoman.",
	"varlet.", "knave.", "villager.", "my liege.", "thou valiant soul.", "thou stout yeoman.",
	"thou gracious dame.", "as the saints bear witness.", "upon mine honour.", "by the Virgin's grace.",
}

var greetings = []string{
	"Hail, good traveler!", "Well met in these fair lands!", "God's greeting to thee!",
	"May fortune favor thee this day!", "A joyous day to thee, wanderer!",
	"The realm welcomes thy presence!", "Blessings upon thee, wayfarer!",
}

var shameDecrees = []string{
	`👑 **ROYAL DECREE OF PUBLIC SHAME** 👑
@here
**BY ORDER OF THE CROWN AND THE REALM'S JUSTICE**
Let it be known throughout the kingdom that the **WRETCHED {user}** doth stand CONDEMNED before the eyes of all subjects!
**🎯 CRIME COMMITTED:** {reason}
**⏰ SENTENCE:** {duration} minutes of UNRELENTING PUBLIC HUMILIATION!
🔥 **LET ALL WITNESS THIS JUSTICE!** 🔥
🔥 **MAY THIS BE A LESSON TO ALL WHO WOULD TRANSGRESS!** 🔥
*The Crown shows no mercy to those who break the peace of the realm!*
*All subjects are commanded to witness this spectacle of justice!*
**SO IT IS DECREED!** ⚖️`,
	`⚔️ **PROCLAMATION OF THE REALM** ⚔️
@here
**Hear ye, hear ye!** By the authority vested in the Crown and the ancient laws of this kingdom!
The **MISERABLE {user}** hath been JUDGED and found MOST WANTING in character and conduct!
**📜 OFFENSE AGAINST THE REALM:** {reason}
**⚖️ PUNISHMENT PRESCRIBED:** {duration} minutes in the STONES OF ETERNAL SHAME!
👑 **LET THE CHURCH BELLS RING FORTH THIS JUSTICE!**
👑 **LET THE TOWNSFOLK GATHER AND WITNESS!**
*May this spectacle serve as warning to all who would disturb the peace!*
*The Crown's justice is swift and terrible to behold!*
**BY ROYAL COMMAND!** 🏰`,
	`🔥 **EDICT OF THE CROWN** 🔥
@here
**BE IT KNOWN TO ALL SUBJECTS OF THE REALM!**
His/Her Majesty doth pronounce that **{user}** shall face the CONSEQUENCES of their base actions!
**⚠️ TRANSGRESSION COMMITTED:** {reason}
**🎯 DOOM APPOINTED:** {duration} minutes of PUBLIC HUMILIATION WITHOUT MERCY!
⚖️ **SO DECLARES THE CROWN AND THE REALM'S JUSTICE!**
⚖️ **LET NONE INTERFERE WITH THE COURSE OF JUSTICE!**
*Gather round, good subjects, and witness the majesty of law!*
*Let this be carved in the annals of the realm's history!*
**THIS DECREE IS LAW!** 📜`,
}

var updateBulletins = []string{
	`⏰ **CHRONICLE OF CONTINUING SHAME** ⏰
@here
**UPDATE FROM THE ROYAL COURT OF JUSTICE**
The **WRETCHED {user}** CONTINUES to suffer the consequences of their crimes against the realm!
**⏳ TIME SERVED:** {elapsed} minutes of shame
**⏳ TIME REMAINING:** {remaining} MORE minutes of public spectacle!
*Justice is patient but thorough in its application!*
*The Crown's judgment knows neither haste nor leniency!*
**LET THE SPECTACLE CONTINUE!** 🔥`,
	`🔔 **BULLETIN FROM THE PILLORY** 🔔
@here
**ATTENTION ALL SUBJECTS OF THE REALM!**
{user} STILL PAYS THE PRICE for their transgressions against the peace of the kingdom!
**⚖️ JUSTICE SERVED:** {elapsed} minutes completed
**⚖️ JUSTICE PENDING:** {remaining} additional minutes of shame!
*The royal chronicles mark each passing moment!*
*Time moves slowly when justice demands its due!*
**THE CROWN IS WATCHING!** 👁️`,
}

var insults = []string{
	"Such shame! Even the village fool covers his eyes in embarrassment!",
	"The gods themselves weep at such pitiful display of character!",
	"Rats flee the square, unable to bear witness to such humiliation!",
	"Even the stones cry out for mercy at this terrible sight!",
	"The crows circle overhead, awaiting the carrion of shattered pride!",
	"Children point and laugh, learning what NOT to become in life!",
	"The shadows themselves reject this poor wretch's presence!",
	"Time moves slowly when justice demands its terrible due!",
	"The church bells toll in mourning for this soul's reputation!",
	"Even the dogs refuse to bark in the presence of such shame!",
}

var releaseCeremonies = []string{
	`👑 **ROYAL DECREE - RELEASE GRANTED** 👑
@here
**BY THE MERCY AND WISDOM OF THE CROWN**
{user} hath been RELEASED from the pillory by royal mercy after serving their full sentence!
**⚖️ Justice has been served!**
**🕊️ May wisdom guide thee henceforth!**
*The Crown shows clemency, but remembers all transgressions!*
*Go forth and sin no more, good subject!*
**THE KING'S MERCY PREVAILS!** 🏰`,
	`🕊️ **PROCLAMATION OF RELEASE** 🕊️
@here
**Hear ye, hear ye!** {user} is FREED from yonder pillory!
**⚔️ The sentence is complete!**
**📜 Justice has had its due!**
*Let this be a lesson learned!*
*Walk henceforth with greater wisdom!*
**BY ORDER OF THE REALM!** 📜`,
}

var pardonCeremonies = []string{
	`👑 **ROYAL DECREE - MERCY GRANTED** 👑
@here
**BY THE INFINITE WISDOM AND MERCY OF THE CROWN**
The sovereign authority {moderator} in their infinite wisdom hath shown LENIENCY to {user}!
**⚖️ The sentence is commuted!**
**🕊️ Mercy prevails over harsh justice this day!**
*Let this be recorded in the annals of the realm!*
*May all subjects mark this day when justice was tempered with compassion!*
**THE KING'S MERCY IS BOUNDLESS!** 📜`,
	`🕊️ **PROCLAMATION OF ROYAL PARDON** 🕊️
@here
**ATTENTION ALL SUBJECTS OF THE REALM!**
By special dispensation and royal prerogative, {moderator} hath granted PARDON to {user}!
**📜 The Crown's mercy extends to all who show repentance!**
**⚔️ Justice is served, but mercy is remembered!**
*Let this deed be carved in the chronicles of our fair kingdom!*
*Walk henceforth with wisdom, pardoned soul!*
**SO DECREES THE CROWN!** ⚖️`,
}

var lockDecrees = []string{
	`🔒 **ROYAL DECREE - CHAMBER SEALED** 🔒
**BY THE DIVINE RIGHT OF THE CROWN AND THE AUTHORITY OF THE REALM**
Let it be proclaimed that **{channel}** is HEREBY SEALED by royal command!
**👑 Authority:** {moderator}
**📜 Cause:** {reason}
*Let NONE dare speak within these hallowed walls until the Crown declares otherwise!*
*The realm demands quiet contemplation and respectful silence!*
*Any subject who violates this decree shall face the full wrath of justice!*
**SO SPEAKS THE CROWN!** ⚖️`,
	`⚔️ **PROCLAMATION - CHAMBER SILENCED** ⚔️
**Hear ye, hear ye!** By ancient law and royal prerogative!
The chamber known as **{channel}** now FACES ROYAL SILENCE and is forbidden to all discourse!
**🎯 Sealed by:** {moderator}
**⚠️ Reason:** {reason}
*The realm demands quiet contemplation and meditation!*
*Let the stones themselves remember this day of enforced silence!*
*May wisdom come to those who would break the peace!*
**BY ORDER OF THE REALM!** 🏰`,
}

var unlockDecrees = []string{
	`🔓 **ROYAL DECREE - CHAMBER RESTORED** 🔓
**BY THE MERCY AND WISDOM OF THE CROWN**
Be it known that **{channel}** is RESTORED TO DISCOURSE by royal mercy!
**👑 Mercy shown by:** {moderator}
**📜 Reason:** {reason}
*Speak freely once more, but remember the lessons that silence hath taught!*
*Let wisdom guide thy words henceforth, good subjects!*
*The Crown shows clemency, but remembers all transgressions!*
**THE KING'S MERCY PREVAILS!** 🕊️`,
	`🕊️ **PROCLAMATION - SILENCE BROKEN** 🕊️
**ATTENTION ALL SUBJECTS!**
The chamber **{channel}** may ONCE MORE RING WITH VOICES and discourse!
**⚖️ Unsealed by:** {moderator}
**🕊️ Cause:** {reason}
*Speak freely, but remember the lessons of enforced silence!*
*Let thy words be measured and wise henceforth!*
*The Crown's mercy is great, but justice is always watching!*
**DISCOURSE IS RESTORED!** 📜`,
}

// LogTexts holds the herald lines for each audit event, keyed by event name.
// Placeholders are filled with Render.
var LogTexts = map[string][]string{
	"message_edit": {
		"📜 **SCROLL AMENDED** 📜\n{user} hath revised their words!\n**Before:** {before}\n**After:** {after}",
		"📝 **CHRONICLE ALTERED** 📝\n{user} hath changed their discourse!\n**Original:** {before}\n**Amended:** {after}",
		"⚔️ **WORDS REFORGED** ⚔️\n{user} hath reforged their message!\n**Prior:** {before}\n**Anew:** {after}",
	},
	"message_delete": {
		"🔥 **WORDS CONSUMED** 🔥\n{user} hath recalled their message!\n**Content:** {content}",
		"⚰️ **DISCOURSE BURIED** ⚰️\n{user} hath erased their words!\n**Said:** {content}",
		"🗡️ **MESSAGE SLAIN** 🗡️\n{user} hath slain their own words!\n**Was:** {content}",
	},
	"member_join": {
		"🚪 **TRAVELER ARRIVES** 🚪\n{user} hath entered the realm!\n**Account created:** {created}",
		"⚔️ **NEW RECRUIT** ⚔️\n{user} joins our noble cause!\n**Journey began:** {created}",
		"🏰 **CITIZEN WELCOMED** 🏰\n{user} now walks among us!\n**Since:** {created}",
	},
	"member_leave": {
		"👋 **SOUL DEPARTS** 👋\n{user} hath left the realm!",
		"⚰️ **CITIZEN GONE** ⚰️\n{user} hath abandoned these lands!",
		"🕊️ **TRAVELER FLED** 🕊️\n{user} hath fled our domain!",
	},
	"nickname_change": {
		"📜 **NAME AMENDED** 📜\n{user} is now known as **{after}**!",
		"⚔️ **TITLE ALTERED** ⚔️\n{user} hath taken the name **{after}**!",
		"👑 **APPELLATION CHANGED** 👑\n{user} shall be called **{after}**!",
	},
	"role_add": {
		"⚔️ **HONOR BESTOWED** ⚔️\n{user} hath gained the role **{role}**!",
		"👑 **PRIVILEGE GRANTED** 👑\n{user} now bears **{role}**!",
		"🏰 **RANK ELEVATED** 🏰\n{user} is elevated to **{role}**!",
	},
	"channel_create": {
		"🏗️ **CHAMBER RAISED** 🏗️\nA new chamber **{channel}** hath been built in the realm!",
		"🏰 **HALL OPENED** 🏰\nThe chamber **{channel}** now welcomes discourse!",
	},
	"channel_delete": {
		"💥 **CHAMBER RAZED** 💥\nThe chamber **{channel}** hath been torn down!",
		"⚰️ **HALL CLOSED** ⚰️\nThe chamber **{channel}** is no more!",
	},
	"role_create": {
		"📯 **TITLE FORGED** 📯\nA new title **{role}** hath been created in the realm!",
		"👑 **RANK ESTABLISHED** 👑\nThe title **{role}** now exists among us!",
	},
	"role_delete": {
		"🗑️ **TITLE ABOLISHED** 🗑️\nThe title **{role}** hath been struck from the realm!",
		"⚰️ **RANK DISSOLVED** ⚰️\nThe title **{role}** is no more!",
	},
	"role_remove": {
		"🗡️ **HONOR STRIPPED** 🗡️\n{user} hath lost the role **{role}**!",
		"⚰️ **PRIVILEGE REVOKED** ⚰️\n{user} no longer bears **{role}**!",
		"👑 **RANK DIMINISHED** 👑\n{role} is removed from {user}!",
	},
	"username_change": {
		"📜 **TITLE RECAST** 📜\n{user} is henceforth known as **{after}**!",
		"👑 **NAME REFORGED** 👑\n{user} now answers to **{after}**!",
	},
	"avatar_change": {
		"🎭 **VISAGE ALTERED** 🎭\n{user} hath changed their appearance!",
		"👑 **COUNTENANCE RENEWED** 👑\n{user} bears a new visage!",
		"⚔️ **FACE REFORGED** ⚔️\n{user} presents a new likeness!",
	},
}

func pick(bank []string) string {
	return bank[rand.Intn(len(bank))]
}

// Render substitutes {key} placeholders in a flavor template.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Prefix returns a random exclamation to open a response with.
func Prefix() string {
	return pick(prefixes)
}

// Suffix returns a random form of address, or an empty string some of the time.
func Suffix() string {
	if rand.Float64() > 0.4 {
		return pick(suffixes)
	}
	return ""
}

// Greeting returns a random welcome line.
func Greeting() string {
	return pick(greetings)
}

// ShameDecree renders the public decree announcing a fresh pillory.
func ShameDecree(userMention, reason string, durationMinutes int) string {
	return Render(pick(shameDecrees), map[string]string{
		"user":     userMention,
		"reason":   reason,
		"duration": fmt.Sprintf("%d", durationMinutes),
	})
}

// UpdateBulletin renders a mid-sentence progress bulletin, with a closing
// insult drawn from the extended bank.
func UpdateBulletin(userMention string, elapsedMinutes, remainingMinutes int) string {
	body := Render(pick(updateBulletins), map[string]string{
		"user":      userMention,
		"elapsed":   fmt.Sprintf("%d", elapsedMinutes),
		"remaining": fmt.Sprintf("%d", remainingMinutes),
	})
	return body + "\n\n*" + pick(insults) + "*"
}

// ReleaseCeremony renders the decree for a sentence served in full.
func ReleaseCeremony(userMention string) string {
	return Render(pick(releaseCeremonies), map[string]string{"user": userMention})
}

// PardonCeremony renders the decree for a sentence ended early by a moderator.
func PardonCeremony(moderatorMention, userMention string) string {
	return Render(pick(pardonCeremonies), map[string]string{
		"moderator": moderatorMention,
		"user":      userMention,
	})
}

// LockDecree renders the decree sealing a channel.
func LockDecree(channelMention, moderatorMention, reason string) string {
	return Render(pick(lockDecrees), map[string]string{
		"channel":   channelMention,
		"moderator": moderatorMention,
		"reason":    reason,
	})
}

// UnlockDecree renders the decree restoring a sealed channel.
func UnlockDecree(channelMention, moderatorMention, reason string) string {
	return Render(pick(unlockDecrees), map[string]string{
		"channel":   channelMention,
		"moderator": moderatorMention,
		"reason":    reason,
	})
}

// LogLine renders a random herald line for an audit event. Unknown events
// fall back to a plain statement so the log never goes silent.
func LogLine(event string, values map[string]string) string {
	bank, ok := LogTexts[event]
	if !ok {
		return Render("📜 {user}: "+event, values)
	}
	return Render(pick(bank), values)
}
