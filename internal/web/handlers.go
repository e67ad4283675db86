package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
	"github.com/nullstride/cube3/internal/search"
)

// SolveRequest is the JSON body of a POST /api/solve request.
type SolveRequest struct {
	Scramble string `json:"scramble"`
	Start    string `json:"start,omitempty"`
}

// SolveResponse is the JSON body returned by POST /api/solve.
type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	Time     string `json:"time"`
	Final    string `json:"final"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; white-space: pre-wrap; font-family: monospace; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a scramble</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });

                const result = await response.json();
                const box = document.getElementById('result');
                if (!response.ok) {
                    box.textContent = 'Error: ' + (result.error || response.statusText);
                } else {
                    box.textContent = 'Solution: ' + result.solution + '\n' +
                        'Moves: ' + result.moves + '\n' +
                        'Time: ' + result.time;
                }
                box.style.display = 'block';
            } catch (error) {
                const box = document.getElementById('result');
                box.textContent = 'Error: ' + error.message;
                box.style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c := cube.Solved
	if req.Start != "" {
		decoded, err := cfen.Decode(req.Start)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("parsing start CFEN: %v", err))
			return
		}
		c = decoded
	}

	moves, err := cube.ParseAlg(req.Scramble)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parsing scramble: %v", err))
		return
	}
	c = c.ApplyAlg(moves)

	start := time.Now()
	solution := search.SolveWithTable(c, s.table)
	elapsed := time.Since(start)

	response := SolveResponse{
		Solution: cube.AlgString(solution.Moves),
		Moves:    len(solution.Moves),
		Time:     elapsed.String(),
		Final:    cfen.Encode(solution.FinalState()),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
