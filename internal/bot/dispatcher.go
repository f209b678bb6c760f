package bot

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Similization/kts-project/internal/game"
	"github.com/Similization/kts-project/internal/models"
)

const (
	MinPlayerCount = 3
	MaxPlayerCount = 5

	CommandStartPrefix = "Создай игру для: "
	CommandFinish      = "Завершить игру"
)

const helpText = "Для того, чтобы создать игру - напишите:\n" +
	"Создай игру для: @username, @username ... @username\n" +
	"Минимальное число игроков - 3\n" +
	"Максимальное число игроков - 5\n" +
	"@username пользователей необходимо указывать через запятую с пробелом"

// Dispatcher routes inbound chat updates to the right live session, or
// starts a new one from the start command. All replies are returned to
// the caller; sending them is the transport's job.
type Dispatcher struct {
	gateway  Gateway
	users    UserDirectory
	members  MemberSource
	hub      Broadcaster
	registry *Registry

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDispatcher(gateway Gateway, users UserDirectory, members MemberSource, hub Broadcaster) *Dispatcher {
	return &Dispatcher{
		gateway:  gateway,
		users:    users,
		members:  members,
		hub:      hub,
		registry: NewRegistry(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the randomness source. Tests use a fixed seed.
func (d *Dispatcher) SetRand(rng *rand.Rand) {
	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	d.rng = rng
}

// sessionRand derives a private source for one session, so sessions on
// different workers never share a rand.Rand.
func (d *Dispatcher) sessionRand() *rand.Rand {
	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	return rand.New(rand.NewSource(d.rng.Int63()))
}

// Restore reloads all unfinished games on startup. Games still below
// the required player count are left unrestored.
func (d *Dispatcher) Restore() error {
	games, err := d.gateway.LoadUnfinishedGames()
	if err != nil {
		return fmt.Errorf("load unfinished games: %w", err)
	}

	for i := range games {
		g := &games[i]
		if len(g.Players) < g.RequiredPlayerCount {
			log.Printf("[Dispatcher] game %d in chat %s is below quorum, not restored", g.ID, g.ChatID)
			continue
		}

		roster := rosterFromModel(g)
		sess := game.RestoreSession(
			g.ID, g.ChatID, g.GameData.Question, g.GameData.Answer, g.GuessedWord,
			g.RequiredPlayerCount, g.CurrentPlayerID, g.CreatedAt, roster, d.sessionRand(),
		)
		d.registry.Register(g.ChatID, &chatEntry{
			session: sess,
			model:   g,
			seen:    make(map[int64]struct{}),
		})
		log.Printf("[Dispatcher] restored game %d in chat %s", g.ID, g.ChatID)
	}

	log.Printf("[Dispatcher] live sessions: %d", d.registry.Len())
	return nil
}

// RouteUpdate handles one inbound update and returns the replies. A
// panic while processing one chat is contained here so it can never
// take a worker down.
func (d *Dispatcher) RouteUpdate(upd ChatUpdate) (out []OutboundMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Dispatcher] panic while handling chat %s: %v", upd.ChatID, rec)
			out = []OutboundMessage{{ChatID: upd.ChatID, Text: "Что-то пошло не так, попробуйте ещё раз."}}
		}
	}()

	entry := d.registry.Get(upd.ChatID)
	if entry == nil {
		return d.handleNoSession(upd)
	}
	return d.handleSession(entry, upd)
}

func (d *Dispatcher) handleNoSession(upd ChatUpdate) []OutboundMessage {
	text := strings.TrimSpace(upd.Text)
	if !strings.HasPrefix(text, CommandStartPrefix) {
		return []OutboundMessage{{ChatID: upd.ChatID, Text: helpText}}
	}

	mentions := strings.Split(text[len(CommandStartPrefix):], ", ")
	if len(mentions) > MaxPlayerCount {
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Игроков слишком много!\n\n" + helpText}}
	}
	if len(mentions) < MinPlayerCount {
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Игроков слишком мало!\n\n" + helpText}}
	}

	members, err := d.members.ChatMembers(upd.ChatID)
	if err != nil {
		log.Printf("[Dispatcher] chat members for %s: %v", upd.ChatID, err)
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Не удалось получить список участников беседы."}}
	}
	byMention := make(map[string]ChatMember, len(members))
	for _, m := range members {
		byMention["@"+m.ScreenName] = m
	}

	users := make([]*models.User, 0, len(mentions))
	for _, mention := range mentions {
		mention = strings.TrimSpace(mention)
		member, ok := byMention[mention]
		if !ok {
			return []OutboundMessage{{
				ChatID: upd.ChatID,
				Text:   fmt.Sprintf("Не удалось найти %s среди участников беседы.", mention),
			}}
		}
		user, err := d.users.ResolveOrCreate(member.VkID, member.Name, member.LastName, mention)
		if err != nil {
			log.Printf("[Dispatcher] resolve user %s: %v", mention, err)
			return []OutboundMessage{{ChatID: upd.ChatID, Text: "Не удалось сохранить игрока, игра не создана."}}
		}
		users = append(users, user)
	}

	data, err := d.gateway.PickRandomGameData()
	if err != nil {
		log.Printf("[Dispatcher] pick game data: %v", err)
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Нет доступных вопросов, игра не создана."}}
	}

	g := &models.Game{
		GameDataID:          data.ID,
		GameData:            *data,
		ChatID:              upd.ChatID,
		ChatMessageID:       upd.MessageID,
		GuessedWord:         strings.Repeat(string(game.MaskRune), len([]rune(data.Answer))),
		RequiredPlayerCount: len(mentions),
	}
	for _, u := range users {
		g.Players = append(g.Players, models.Player{GameID: g.ID, UserID: u.ID, User: *u})
	}
	if err := d.gateway.CreateGame(g); err != nil {
		log.Printf("[Dispatcher] create game in chat %s: %v", upd.ChatID, err)
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Не удалось создать игру, попробуйте ещё раз."}}
	}

	roster := rosterFromModel(g)
	sess := game.NewSession(g.ID, g.ChatID, data.Question, data.Answer, len(mentions), roster, d.sessionRand())

	g.CurrentPlayerID = sess.Current().ID
	if err := d.gateway.SaveGame(g); err != nil {
		log.Printf("[Dispatcher] save game %d: %v", g.ID, err)
	}

	entry := &chatEntry{session: sess, model: g, seen: make(map[int64]struct{})}
	entry.markSeen(upd.MessageID)
	if !d.registry.Register(upd.ChatID, entry) {
		return []OutboundMessage{{ChatID: upd.ChatID, Text: "Игра в этом чате уже идёт."}}
	}

	d.broadcast(sess)
	summary := fmt.Sprintf(
		"Игра была создана!\nСписок игроков:\n%s\nВопрос:\n%s\nСлово: %s\nПервым ходит: %s",
		scoreboard(roster), data.Question, sess.Word().Revealed(), sess.Current().DisplayName,
	)
	return []OutboundMessage{{ChatID: upd.ChatID, Text: summary, Keyboard: KeyboardFinish}}
}

func (d *Dispatcher) handleSession(entry *chatEntry, upd ChatUpdate) []OutboundMessage {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.markSeen(upd.MessageID) {
		return nil
	}

	sess := entry.session

	if strings.Contains(upd.Text, CommandFinish) {
		sess.ForceFinish()
		if err := d.persist(entry); err != nil {
			log.Printf("[Dispatcher] persist finished game %d: %v", sess.ID, err)
		}
		d.registry.Remove(upd.ChatID)
		d.broadcast(sess)
		return []OutboundMessage{{
			ChatID: upd.ChatID,
			Text:   "Результаты игры:\n" + scoreboard(sess.Roster()) + "\n",
		}}
	}

	outcome := sess.ProcessGuess(upd.SenderID, upd.Text)

	if !outcome.Rejected {
		if err := d.persist(entry); err != nil {
			log.Printf("[Dispatcher] persist game %d: %v", sess.ID, err)
			return []OutboundMessage{{ChatID: upd.ChatID, Text: "Не удалось сохранить ход, попробуйте ещё раз."}}
		}
		if outcome.Finished {
			d.registry.Remove(upd.ChatID)
		}
		d.broadcast(sess)
	}

	keyboard := KeyboardFinish
	if outcome.Finished {
		keyboard = KeyboardNone
	}
	text := "Результаты игры:\n" + scoreboard(sess.Roster()) + "\n" + outcome.Text + "\n"
	return []OutboundMessage{{ChatID: upd.ChatID, Text: text, Keyboard: keyboard}}
}

// persist copies the in-memory session state back into the stored game
// and writes it through the gateway.
func (d *Dispatcher) persist(entry *chatEntry) error {
	sess, g := entry.session, entry.model

	g.GuessedWord = sess.Word().Revealed()
	g.CurrentPlayerID = sess.Current().ID
	g.FinishedAt = sess.FinishedAt

	if err := d.gateway.SaveGame(g); err != nil {
		return err
	}
	for _, p := range sess.Roster().All() {
		for i := range g.Players {
			if g.Players[i].ID != p.ID {
				continue
			}
			g.Players[i].Score = p.Score
			g.Players[i].Eliminated = p.Eliminated
			g.Players[i].IsWinner = p.IsWinner
			if err := d.gateway.SavePlayer(&g.Players[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dispatcher) broadcast(sess *game.Session) {
	if d.hub == nil {
		return
	}
	d.hub.BroadcastGame(sess.ChatID, SnapshotOf(sess))
}

// Live reports the number of live sessions.
func (d *Dispatcher) Live() int {
	return d.registry.Len()
}

func rosterFromModel(g *models.Game) *game.Roster {
	participants := make([]*game.Participant, 0, len(g.Players))
	for _, p := range g.Players {
		participants = append(participants, &game.Participant{
			ID:          p.ID,
			UserID:      p.UserID,
			VkID:        p.User.VkID,
			DisplayName: p.User.Username,
			Score:       p.Score,
			Eliminated:  p.Eliminated,
			IsWinner:    p.IsWinner,
		})
	}
	return game.NewRoster(participants)
}

// scoreboard renders the roster as numbered "username: score" lines.
func scoreboard(r *game.Roster) string {
	lines := make([]string, 0, r.Len())
	for i, p := range r.All() {
		lines = append(lines, fmt.Sprintf("%d) %s: %d", i+1, p.DisplayName, p.Score))
	}
	return strings.Join(lines, "\n")
}
