package discord

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
	"github.com/celebi-bot/celebi/internal/services"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
	mockcharacter "github.com/celebi-bot/celebi/internal/services/character/mock"
	"github.com/celebi-bot/celebi/internal/testutils"
	mockuuid "github.com/celebi-bot/celebi/internal/uuid/mock"
)

const testForumURL = "https://astonish.jcink.net"

// fakeResponder records what the handler sent back to Discord
type fakeResponder struct {
	mu         sync.Mutex
	responses  []*discordgo.InteractionResponse
	edits      []*discordgo.WebhookEdit
	respondErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return f.respondErr
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) lastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	require.NotEmpty(t, f.edits)
	return f.edits[len(f.edits)-1]
}

func (f *fakeResponder) lastContent(t *testing.T) string {
	t.Helper()
	edit := f.lastEdit(t)
	require.NotNil(t, edit.Content)
	return *edit.Content
}

type handlerFixture struct {
	handler   *Handler
	service   *mockcharacter.MockService
	uuid      *mockuuid.MockGenerator
	responder *fakeResponder
	ctx       context.Context
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	svc := mockcharacter.NewMockService(ctrl)
	gen := mockuuid.NewMockGenerator(ctrl)

	return &handlerFixture{
		handler: NewHandler(&HandlerConfig{
			ServiceProvider: &services.Provider{CharacterService: svc, UUIDGenerator: gen},
			ForumURL:        testForumURL,
		}),
		service:   svc,
		uuid:      gen,
		responder: &fakeResponder{},
		ctx:       context.Background(),
	}
}

func (f *handlerFixture) run(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) {
	f.handler.handle(f.ctx, f.responder, commandInteraction(name, opts...))
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Data:   discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
		Member: &discordgo.Member{User: &discordgo.User{ID: "8675309"}},
	}}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func TestCommands_AdminOnly(t *testing.T) {
	admin := map[string]bool{"extra": true, "all": true, "give-pokemon": true, "remove-pokemon": true, "link-profile": true}

	for _, cmd := range Commands() {
		require.NotNil(t, cmd.DMPermission, cmd.Name)
		assert.False(t, *cmd.DMPermission, cmd.Name)
		if admin[cmd.Name] {
			require.NotNil(t, cmd.DefaultMemberPermissions, cmd.Name)
			assert.Equal(t, int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions, cmd.Name)
		} else {
			assert.Nil(t, cmd.DefaultMemberPermissions, cmd.Name)
		}
	}
	assert.Len(t, Commands(), 8)
}

func TestCharacterCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "Bryn").Return(bryn, nil)

	f.run("character", stringOpt(optCharacter, "Bryn"))

	require.Len(t, f.responder.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, f.responder.responses[0].Type)

	edit := f.responder.lastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.Len(t, *edit.Embeds, 1)
	embed := (*edit.Embeds)[0]
	assert.Equal(t, "Bryn Vaughn", embed.Title)
	assert.Equal(t, "https://astonish.jcink.net/index.php?showuser=45", embed.URL)
	assert.Equal(t, entities.TrainerClassKrisigos.Color(), embed.Color)
}

func TestCharacterCommand_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	notFound := dnderr.NotFoundf("character 999 not found").WithMeta("member_id", 999)
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "999").Return(nil, notFound)

	f.run("character", stringOpt(optCharacter, "999"))

	assert.Equal(t, "❌ "+msgCharacterNotFound, f.responder.lastContent(t))
}

func TestCharacterCommand_Restricted(t *testing.T) {
	f := newHandlerFixture(t)
	err := characterService.CheckVisible(testutils.CreateTestCharacter(1, "ASTONISH", "Admin"))
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "1").Return(nil, err)

	f.run("character", stringOpt(optCharacter, "1"))

	assert.Equal(t, "❌ "+msgRestricted, f.responder.lastContent(t))
}

func TestCharacterCommand_InternalErrorHasReference(t *testing.T) {
	f := newHandlerFixture(t)
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "46").
		Return(nil, dnderr.Inconsistentf("requested member 46 but the edit form is for member 45"))
	f.uuid.EXPECT().New().Return("0b5f3c1e-8d0a-4c55-9a8e-2f1c7d7e9a10")

	f.run("character", stringOpt(optCharacter, "46"))

	assert.Equal(t, "❌ Something went wrong. Reference: `0b5f3c1e`", f.responder.lastContent(t))
}

func TestCharacterCommand_InvalidForumData(t *testing.T) {
	f := newHandlerFixture(t)
	bad := dnderr.Wrapf(dnderr.Validationf("unknown blood type %q", "xx").WithMeta("field", "blood_type"),
		"failed to parse character profile")
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "45").Return(nil, bad)
	f.uuid.EXPECT().New().Return("7c2e91aa-0d3b-4f6e-8a51-93b0c4d2e7f8")

	f.run("character", stringOpt(optCharacter, "45"))

	content := f.responder.lastContent(t)
	assert.Equal(t, "❌ "+msgCorruptData+" Reference: `7c2e91aa`", content)
	assert.NotContains(t, content, "blood type")
}

func TestCharacterCommand_ForumUnavailable(t *testing.T) {
	f := newHandlerFixture(t)
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "45").
		Return(nil, dnderr.New(dnderr.CodeUnauthenticated, "astonish login failed"))

	f.run("character", stringOpt(optCharacter, "45"))

	assert.Equal(t, "❌ "+msgForumUnavailable, f.responder.lastContent(t))
}

func TestCommand_AcknowledgeFails(t *testing.T) {
	f := newHandlerFixture(t)
	f.responder.respondErr = errors.New("unknown interaction")

	// no service call expected
	f.run("character", stringOpt(optCharacter, "45"))

	assert.Empty(t, f.responder.edits)
}

func TestTeamCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "45").Return(bryn, nil)

	f.run("team", stringOpt(optCharacter, "45"))

	edit := f.responder.lastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Contains(t, *edit.Content, "has 2 Pokémon on their team:")
	require.NotNil(t, edit.Embeds)
	require.Len(t, *edit.Embeds, 2)
	assert.Equal(t, "Eevee (Shiny)", (*edit.Embeds)[1].Title)
	assert.Equal(t, "2/2", (*edit.Embeds)[1].Footer.Text)
}

func TestTeamCommand_EmptyPC(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	bryn.PersonalComputer = nil
	f.service.EXPECT().GetVisibleCharacter(f.ctx, "45").Return(bryn, nil)

	f.run("team", stringOpt(optCharacter, "45"))

	assert.Contains(t, f.responder.lastContent(t), "doesn't have any Pokémon")
}

func TestInventoryCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	inv := &entities.Inventory{Owner: "Bryn Vaughn", Items: []entities.ItemStack{
		{Name: "Inamorata", Stock: 1},
		{Name: "Rare Candy", Stock: 3},
	}}
	f.service.EXPECT().GetInventory(f.ctx, &characterService.GetInventoryInput{Query: "45", RequesterID: 8675309}).
		Return(&characterService.GetInventoryOutput{Character: bryn, Inventory: inv}, nil)

	f.run("inventory", stringOpt(optCharacter, "45"))

	require.Len(t, f.responder.responses, 1)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, f.responder.responses[0].Data.Flags)

	edit := f.responder.lastEdit(t)
	assert.Contains(t, *edit.Content, "owns 4 items:")
	require.Len(t, *edit.Embeds, 2)
	assert.Equal(t, "Rare Candy (x3)", (*edit.Embeds)[1].Title)
}

func TestInventoryCommand_UserMismatch(t *testing.T) {
	f := newHandlerFixture(t)
	err := characterService.CheckOwner(testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos"), 8675309)
	f.service.EXPECT().GetInventory(f.ctx, gomock.Any()).Return(nil, err)

	f.run("inventory", stringOpt(optCharacter, "45"))

	assert.Equal(t, "❌ "+msgUserMismatch, f.responder.lastContent(t))
}

func TestExtraCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.LinkedTo(testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos"), 8675309)
	f.service.EXPECT().GetCharacter(f.ctx, "45").Return(bryn, nil)

	f.run("extra", stringOpt(optCharacter, "45"))

	content := f.responder.lastContent(t)
	assert.Contains(t, content, "```json")
	assert.Contains(t, content, `"discord_id": 8675309`)
}

func TestAllCommand(t *testing.T) {
	f := newHandlerFixture(t)
	f.service.EXPECT().ListCharacters(f.ctx).Return([]*entities.MemberCard{
		testutils.CreateTestMemberCard(2, "Abelone Athanasiou", "sophist"),
		testutils.CreateTestMemberCard(45, "Bryn Vaughn", "krisigos"),
	}, nil)

	f.run("all")

	edit := f.responder.lastEdit(t)
	require.Len(t, edit.Files, 1)
	assert.Equal(t, "members.txt", edit.Files[0].Name)
	data, err := io.ReadAll(edit.Files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, "#  2: Abelone Athanasiou\n# 45: Bryn Vaughn\n", string(data))
}

func TestGivePokemonCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	bryn.PersonalComputer.Add(entities.Pokemon{ID: 448, Name: "Lucario"})

	f.service.EXPECT().GivePokemon(f.ctx, &characterService.GivePokemonInput{
		Query:       "45",
		PokemonID:   448,
		PokemonName: "Lucario",
	}).Return(bryn, nil)

	f.run("give-pokemon", stringOpt(optCharacter, "45"), intOpt(optPokemonID, 448), stringOpt(optPokemonName, "Lucario"))

	edit := f.responder.lastEdit(t)
	assert.Contains(t, *edit.Content, "Added a Pokémon to")
	require.Len(t, *edit.Embeds, 1)
	assert.Equal(t, "Lucario", (*edit.Embeds)[0].Title)
	assert.Equal(t, "3/3", (*edit.Embeds)[0].Footer.Text)
}

func TestRemovePokemonCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	f.service.EXPECT().RemovePokemon(f.ctx, &characterService.RemovePokemonInput{Query: "45", Slot: 2}).
		Return(&characterService.RemovePokemonOutput{
			Character: bryn,
			Removed:   entities.Pokemon{ID: 133, Name: "Eevee", Shiny: true},
		}, nil)

	f.run("remove-pokemon", stringOpt(optCharacter, "45"), intOpt(optSlot, 2))

	assert.Contains(t, f.responder.lastContent(t), "Removed Eevee (Shiny) from")
}

func TestRemovePokemonCommand_BadSlot(t *testing.T) {
	f := newHandlerFixture(t)
	f.service.EXPECT().RemovePokemon(f.ctx, gomock.Any()).
		Return(nil, dnderr.Wrapf(dnderr.NotFoundf("no pokemon in slot %d", 7), "Bryn Vaughn has 2 pokemon"))

	f.run("remove-pokemon", stringOpt(optCharacter, "45"), intOpt(optSlot, 7))

	assert.Equal(t, "❌ No pokemon in slot 7.", f.responder.lastContent(t))
}

func TestLinkProfileCommand(t *testing.T) {
	f := newHandlerFixture(t)
	bryn := testutils.CreateTestCharacter(45, "Bryn Vaughn", "krisigos")
	f.service.EXPECT().LinkProfile(f.ctx, &characterService.LinkProfileInput{
		ProfileURL: "https://astonish.jcink.net/index.php?showuser=45",
		DiscordID:  81234567890123456,
	}).Return(testutils.LinkedTo(bryn, 81234567890123456), nil)

	f.run("link-profile",
		&discordgo.ApplicationCommandInteractionDataOption{Name: optMember, Type: discordgo.ApplicationCommandOptionUser, Value: "81234567890123456"},
		stringOpt(optProfileURL, "https://astonish.jcink.net/index.php?showuser=45"),
	)

	assert.Equal(t, "Linked [Bryn Vaughn](https://astonish.jcink.net/index.php?showuser=45) to <@81234567890123456>!", f.responder.lastContent(t))
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	f.run("pokemon")
	assert.Empty(t, f.responder.responses)
}

func TestAutocomplete(t *testing.T) {
	f := newHandlerFixture(t)
	f.service.EXPECT().ListCharacters(f.ctx).Return([]*entities.MemberCard{
		testutils.CreateTestMemberCard(45, "Bryn Vaughn", "krisigos"),
		testutils.CreateTestMemberCard(46, "Brynja Holm", "sophist"),
		testutils.CreateTestMemberCard(178, "Aisling Rí Darach", "aphidoidea"),
	}, nil).Times(1)

	autocomplete := func(value string) []*discordgo.ApplicationCommandOptionChoice {
		f.responder.responses = nil
		f.handler.handle(f.ctx, f.responder, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommandAutocomplete,
			Data: discordgo.ApplicationCommandInteractionData{Name: "team", Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: optCharacter, Type: discordgo.ApplicationCommandOptionString, Value: value, Focused: true},
			}},
		}})
		require.Len(t, f.responder.responses, 1)
		assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, f.responder.responses[0].Type)
		return f.responder.responses[0].Data.Choices
	}

	choices := autocomplete("bryn")
	require.Len(t, choices, 2)
	assert.Equal(t, "Bryn Vaughn", choices[0].Name)
	assert.Equal(t, "45", choices[0].Value)

	// the member list is cached between keystrokes
	choices = autocomplete("178")
	require.Len(t, choices, 1)
	assert.Equal(t, "Aisling Rí Darach (#178)", choices[0].Name)

	assert.Len(t, autocomplete(""), 3)
	assert.Empty(t, autocomplete("zzz"))
}

func TestRecoverMiddleware(t *testing.T) {
	r := &fakeResponder{}
	i := commandInteraction("character")

	assert.NotPanics(t, func() {
		defer recoverInteraction("test", r, i)
		panic("boom")
	})

	require.Len(t, r.responses, 1)
	assert.Equal(t, "❌ An unexpected error occurred.", r.responses[0].Data.Content)
	assert.Empty(t, r.edits)
}
