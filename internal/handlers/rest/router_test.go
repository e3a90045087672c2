package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/handlers/rest"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
	battlemock "github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle/mock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
	pokedexmock "github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex/mock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/testutils"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPokedex *pokedexmock.MockService
	mockBattle  *battlemock.MockService
	router      *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPokedex = pokedexmock.NewMockService(s.ctrl)
	s.mockBattle = battlemock.NewMockService(s.ctrl)

	router, err := rest.NewRouter(&rest.Config{
		PokedexService: s.mockPokedex,
		BattleService:  s.mockBattle,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) get(path string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *RouterTestSuite) TestRoot() {
	rec, body := s.get("/")
	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal(rest.WelcomeMessage, body["message"])
}

func (s *RouterTestSuite) TestGetPokemon() {
	s.mockPokedex.EXPECT().
		GetPokemon(gomock.Any(), &pokedex.GetPokemonInput{Name: "Pikachu"}).
		Return(&pokedex.GetPokemonOutput{Pokemon: testutils.CreateTestPikachu()}, nil)

	rec, body := s.get("/pokemon/Pikachu")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal("pikachu", body["name"])
	s.Assert().Contains(body, "sprite")
	s.Assert().Contains(body, "evolution_chain")
	s.Assert().Len(body["abilities"], 1)
}

func (s *RouterTestSuite) TestGetPokemonErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{
			name:   "not found",
			err:    errors.NotFoundf("Pokémon '%s' not found.", "missingno"),
			status: http.StatusNotFound,
			detail: "Pokémon 'missingno' not found.",
		},
		{
			name:   "provider down",
			err:    errors.Wrap(errors.Unavailable("pokeapi returned 503"), "lookup failed"),
			status: http.StatusServiceUnavailable,
			detail: "pokeapi returned 503",
		},
		{
			name:   "timeout",
			err:    errors.DeadlineExceeded("pokeapi request timed out"),
			status: http.StatusGatewayTimeout,
			detail: "pokeapi request timed out",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPokedex.EXPECT().GetPokemon(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec, body := s.get("/pokemon/missingno")
			s.Assert().Equal(tc.status, rec.Code)
			s.Assert().Equal(tc.detail, body["detail"])
		})
	}
}

func (s *RouterTestSuite) TestSimulateBattle() {
	s.mockBattle.EXPECT().
		SimulateBattle(gomock.Any(), &battle.SimulateBattleInput{Pokemon1: "pikachu", Pokemon2: "bulbasaur", Seed: 9}).
		Return(&battle.SimulateBattleOutput{Record: testutils.CreateTestBattleRecord(testutils.TestBattleID), Stored: true}, nil)

	rec, body := s.get("/battle/simulate?pokemon1=pikachu&pokemon2=bulbasaur&seed=9")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal(testutils.TestBattleID, body["battle_id"])
	s.Assert().Equal("Pikachu", body["winner"])

	log := body["battle_log"].([]any)
	s.Require().Len(log, 3)
	s.Assert().Equal("Bulbasaur fainted!", log[1].(map[string]any)["text"])
	s.Assert().Equal("end", log[2].(map[string]any)["action"])
}

func (s *RouterTestSuite) TestSimulateBattleBadSeed() {
	rec, body := s.get("/battle/simulate?pokemon1=a&pokemon2=b&seed=-1")
	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(body["detail"], "seed")
}

func (s *RouterTestSuite) TestSimulateBattleMissingNames() {
	s.mockBattle.EXPECT().
		SimulateBattle(gomock.Any(), &battle.SimulateBattleInput{Pokemon1: "pikachu"}).
		Return(nil, errors.InvalidArgument("validation failed: pokemon2: is required"))

	rec, body := s.get("/battle/simulate?pokemon1=pikachu")
	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(body["detail"], "pokemon2")
}

func (s *RouterTestSuite) TestListBattles() {
	s.mockBattle.EXPECT().
		ListBattles(gomock.Any(), &battle.ListBattlesInput{Limit: 5}).
		Return(&battle.ListBattlesOutput{Records: []*entities.BattleRecord{testutils.CreateTestBattleRecord("b1")}}, nil)

	rec, body := s.get("/battles?limit=5")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Assert().Len(body["battles"], 1)
}

func (s *RouterTestSuite) TestListBattlesEmptyIsArray() {
	s.mockBattle.EXPECT().
		ListBattles(gomock.Any(), &battle.ListBattlesInput{}).
		Return(&battle.ListBattlesOutput{}, nil)

	rec, _ := s.get("/battles")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Assert().JSONEq(`{"battles": []}`, rec.Body.String())
}

func (s *RouterTestSuite) TestListBattlesBadLimit() {
	rec, _ := s.get("/battles?limit=lots")
	s.Assert().Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestGetBattle() {
	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "b1"}).
		Return(&battle.GetBattleOutput{Record: testutils.CreateTestBattleRecord("b1")}, nil)

	rec, body := s.get("/battles/b1")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal("b1", body["id"])
	s.Assert().Equal("pikachu", body["pokemon1"])
}

func (s *RouterTestSuite) TestGetBattleNotFound() {
	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("battle not found: nope"))

	rec, body := s.get("/battles/nope")
	s.Assert().Equal(http.StatusNotFound, rec.Code)
	s.Assert().Equal("battle not found: nope", body["detail"])
}

func (s *RouterTestSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodOptions, "/battle/simulate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusNoContent, rec.Code)
	s.Assert().Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Assert().Equal(http.MethodGet, rec.Header().Get("Access-Control-Allow-Methods"))

	rec2 := httptest.NewRecorder()
	s.router.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/", nil))
	s.Assert().Equal("*", rec2.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterTestSuite) TestStreamBattle() {
	record := testutils.CreateTestBattleRecord("b1")
	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "b1"}).
		Return(&battle.GetBattleOutput{Record: record}, nil)

	router, err := rest.NewRouter(&rest.Config{
		PokedexService: s.mockPokedex,
		BattleService:  s.mockBattle,
		ReplayInterval: 5 * time.Millisecond,
	})
	s.Require().NoError(err)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/battles/b1/stream"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	var got []entities.LogEntry
	for {
		var entry entities.LogEntry
		if err := conn.ReadJSON(&entry); err != nil {
			s.Assert().True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
			break
		}
		got = append(got, entry)
	}

	s.Assert().Equal(record.Log, got)
}

func (s *RouterTestSuite) TestStreamBattleNotFound() {
	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("battle not found: nope"))

	rec, body := s.get("/battles/nope/stream")
	s.Assert().Equal(http.StatusNotFound, rec.Code)
	s.Assert().Equal("battle not found: nope", body["detail"])
}

func (s *RouterTestSuite) TestNewRouterValidation() {
	_, err := rest.NewRouter(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = rest.NewRouter(&rest.Config{PokedexService: s.mockPokedex, BattleService: s.mockBattle, ReplayInterval: -time.Second})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "ReplayInterval")
}
