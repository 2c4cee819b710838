package engine

import (
	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/api"
)

// BuildSnapshot собирает полный DTO-снимок рейда на конец тика.
// Снимок не держит ссылок на живое состояние - его можно сериализовать
// из любого потока.
func (r *Raid) BuildSnapshot() *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:      "STATE",
		Tick:      r.tick,
		RaidState: r.state.String(),
		Weather:   r.weather.String(),
		Player:    buildPlayerView(r.Player),
		Logs:      buildLogViews(r.Messages.Entries()),
	}

	if r.Grid != nil {
		resp.Grid = &api.GridMeta{Width: r.Grid.Width, Height: r.Grid.Height}
		resp.Map = buildTileRows(r.Grid)
	}

	for _, e := range r.Enemies.Enemies() {
		resp.Enemies = append(resp.Enemies, api.EnemyView{
			ID:     e.ID,
			Name:   e.Name,
			Symbol: string(e.Class.Symbol()),
			Pos:    api.PositionView{X: e.Pos.X, Y: e.Pos.Y},
			HP:     e.Health,
			MaxHP:  e.MaxHealth,
		})
	}

	for _, o := range r.Missions.Objectives() {
		resp.Objectives = append(resp.Objectives, api.ObjectiveView{
			Description: o.Description,
			Current:     o.Current,
			Target:      o.Target,
			Completed:   o.Completed,
		})
	}

	return resp
}

func buildTileRows(g *domain.WorldGrid) []string {
	rows := make([]string, g.Height)
	line := make([]rune, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			line[x] = g.GetTile(x, y)
		}
		rows[y] = string(line)
	}
	return rows
}

func buildPlayerView(p *domain.Player) *api.PlayerView {
	view := &api.PlayerView{
		Pos:        api.PositionView{X: p.Pos.X, Y: p.Pos.Y},
		HP:         p.Health,
		MaxHP:      p.MaxHealth,
		Level:      p.Level,
		Experience: p.Experience,
		KillCount:  p.KillCount,
		Armor:      p.TotalArmorRating(),
		Inventory: &api.InventoryView{
			Items:    buildItemViews(p.Inventory),
			Capacity: p.InventoryCapacity,
		},
	}

	if w := p.ActiveWeapon(); w != nil {
		view.Weapon = &api.WeaponView{
			Name:         w.Name,
			Damage:       w.Damage,
			Loaded:       w.Loaded,
			MagazineSize: w.MagazineSize,
		}
	}
	return view
}

func buildItemViews(items []*domain.Item) []api.ItemView {
	views := make([]api.ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, api.ItemView{
			ID:     it.ID,
			Name:   it.Name,
			Kind:   it.Kind.String(),
			Symbol: string(it.Symbol()),
			Count:  it.Count,
			Value:  it.Value,
		})
	}
	return views
}

func buildLogViews(entries []domain.LogEntry) []api.LogEntry {
	views := make([]api.LogEntry, 0, len(entries))
	for _, e := range entries {
		views = append(views, api.LogEntry{Tick: e.Tick, Text: e.Text, Type: e.Type})
	}
	return views
}
