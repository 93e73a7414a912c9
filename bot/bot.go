package bot

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"medieval-moderator/commands"
	"medieval-moderator/model"
	"medieval-moderator/platform"
	"medieval-moderator/sanction"
)

type Bot struct {
	Session            *discordgo.Session
	DB                 *sqlx.DB
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	Manager  *sanction.Manager
	Locks    *sanction.LockManager
	Notifier *sanction.Notifier
	Sweeper  *sanction.Sweeper

	Announcer  *platform.Announcer
	Authorizer *platform.Authorizer
	Auditor    *platform.Auditor
	Sealer     *platform.Sealer

	config atomic.Value // *model.Config
	done   chan struct{}
	wg     sync.WaitGroup
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) SetConfig(cfg *model.Config) {
	b.config.Store(cfg)
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentGuildModeration |
		discordgo.IntentMessageContent

	announcer := platform.NewAnnouncer(dg, db)
	authorizer := platform.NewAuthorizer(dg, db)
	notifier := sanction.NewNotifier(db, announcer, cfg.ProgressInterval)

	b := &Bot{
		Session:    dg,
		DB:         db,
		Manager:    sanction.NewManager(db, announcer, authorizer, authorizer, notifier),
		Locks:      sanction.NewLockManager(db),
		Notifier:   notifier,
		Sweeper:    sanction.NewSweeper(db, announcer, cfg.SweepInterval),
		Announcer:  announcer,
		Authorizer: authorizer,
		Auditor:    platform.NewAuditor(dg, db),
		Sealer:     platform.NewSealer(dg),
		done:       make(chan struct{}),
	}
	b.config.Store(cfg)
	return b, nil
}

// RegisterCommands bulk-overwrites the global command set.
func (b *Bot) RegisterCommands() {
	cmds := commands.All()
	log.Printf("Registering %d commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, "", cmds)
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
		return
	}
	b.RegisteredCommands = registered
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	close(b.done)
	b.Notifier.Stop()
	b.wg.Wait()
	b.Session.Close()
}
