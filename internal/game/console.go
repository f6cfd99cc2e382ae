package game

//go:generate mockgen -destination=mock/mock.go -package=gamemock github.com/samdwyer/dungeoncrawl/internal/game Console

// Console is the text channel between the game and the player. Write prints
// text as is; Writeln ends it with a newline. Read returns the trimmed line
// or io.EOF once input is exhausted.
type Console interface {
	Write(text string)
	Writeln(line string)
	Read(prompt string) (string, error)
}
