package enum

type HandlerName int

const (
    HandlerNameLocationEventsHandler HandlerName = iota
    HandlerNameLocalServer
)

func (s HandlerName) String() string {
    return []string{
        "locationEventsHandler",
        "localServer",
    }[s]
}
