// Command clobctl is a local, non-networked REPL for driving clob-engine
// order books by hand, one active symbol's book at a time (switched with
// the 'symbol' command). It is a debugging/demo surface, not
// a wire protocol: it talks to engine.OrderBook in-process and never
// opens a socket.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"clob-engine/src/engine"
	"clob-engine/src/logger"
)

func main() {
	logger.InitLoggerFromEnv()
	log := logger.GetLogger()

	symbol := "AAPL"
	if s := os.Getenv("CLOB_SYMBOL"); s != "" {
		symbol = s
	}

	registry := engine.NewBookRegistry(engine.SystemClock, logger.NewMatchSink())
	registry.GetOrCreateOrderBook(symbol)
	active := symbol

	log.Info().Str("symbol", active).Msg("clobctl ready")
	fmt.Fprintf(os.Stdout, "clobctl — type 'help' for commands, 'quit' to exit\n")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("received shutdown signal")
		logger.CloseLogger()
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	var nextID engine.OrderID = 1

	for {
		fmt.Fprintf(os.Stdout, "%s> ", active)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			logger.CloseLogger()
			return
		case "help":
			printHelp()
		case "symbol":
			if len(fields) < 2 {
				fmt.Println("usage: symbol <SYMBOL>")
				continue
			}
			active = strings.ToUpper(fields[1])
			registry.GetOrCreateOrderBook(active)
		case "add":
			handleAdd(registry.GetOrCreateOrderBook(active), fields[1:], &nextID)
		case "cancel":
			handleCancel(registry.GetOrCreateOrderBook(active), fields[1:])
		case "modify":
			handleModify(registry.GetOrCreateOrderBook(active), fields[1:])
		case "book":
			fmt.Println(registry.GetOrCreateOrderBook(active).String())
		case "order":
			handleOrder(registry.GetOrCreateOrderBook(active), fields[1:])
		default:
			fmt.Printf("unknown command %q, type 'help'\n", fields[0])
		}
	}

	logger.CloseLogger()
}

func printHelp() {
	fmt.Println(`commands:
  add <BUY|SELL> <LIMIT|MARKET> <qty> [price] [GTC|IOC|FOK]
  cancel <id>
  modify <id> [price] [qty]     (either may be '-' to leave unset)
  order <id>
  book
  symbol <SYMBOL>
  quit`)
}

func handleAdd(book *engine.OrderBook, args []string, nextID *engine.OrderID) {
	if len(args) < 3 {
		fmt.Println("usage: add <BUY|SELL> <LIMIT|MARKET> <qty> [price] [TIF]")
		return
	}

	side := engine.OrderSide(strings.ToUpper(args[0]))
	typ := engine.OrderType(strings.ToUpper(args[1]))

	qtyF, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Println("bad quantity:", err)
		return
	}
	qty := engine.QuantityFromFloat(qtyF)

	price := engine.ZeroPrice
	idx := 3
	if typ == engine.TypeLimit {
		if len(args) < 4 {
			fmt.Println("limit orders require a price")
			return
		}
		priceF, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			fmt.Println("bad price:", err)
			return
		}
		price = engine.PriceFromFloat(priceF)
		idx = 4
	}

	tif := engine.TIFGTC
	if len(args) > idx {
		tif = engine.TimeInForce(strings.ToUpper(args[idx]))
	}

	id := *nextID
	*nextID++

	order := engine.NewOrder(engine.SystemClock, id, book.Symbol(), side, typ, price, qty, tif)
	matches := book.AddOrder(order)

	fmt.Printf("order %d status=%s remaining=%s\n", order.ID, order.Status, order.RemainingQuantity())
	for _, m := range matches {
		fmt.Println(" ", m.String())
	}
}

func handleCancel(book *engine.OrderBook, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: cancel <id>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad id:", err)
		return
	}
	ok := book.CancelOrder(engine.OrderID(id))
	fmt.Println("cancelled:", ok)
}

func handleModify(book *engine.OrderBook, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: modify <id> [price] [qty]")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad id:", err)
		return
	}

	var pricePtr *engine.Price
	if len(args) > 1 && args[1] != "-" {
		priceF, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println("bad price:", err)
			return
		}
		p := engine.PriceFromFloat(priceF)
		pricePtr = &p
	}

	var qtyPtr *engine.Quantity
	if len(args) > 2 && args[2] != "-" {
		qtyF, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Println("bad quantity:", err)
			return
		}
		q := engine.QuantityFromFloat(qtyF)
		qtyPtr = &q
	}

	matches := book.ModifyOrder(engine.OrderID(id), pricePtr, qtyPtr)
	for _, m := range matches {
		fmt.Println(" ", m.String())
	}
}

func handleOrder(book *engine.OrderBook, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: order <id>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad id:", err)
		return
	}
	o, ok := book.GetOrder(engine.OrderID(id))
	if !ok {
		fmt.Println("no such order")
		return
	}
	fmt.Println(o.String())
}
