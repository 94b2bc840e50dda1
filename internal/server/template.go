package server

const dashboardTemplate = `<!doctype html>
<html>
<head>
    <title>NCAAB 1H Integer Dashboard</title>
    <style>
        body { font-family: Arial, sans-serif; padding: 20px; }
        h1 { margin-bottom: 0; }
        .subtitle { color: #555; margin-top: 5px; margin-bottom: 20px; }
        table { border-collapse: collapse; width: 100%; margin-top: 10px; }
        th, td { border: 1px solid #ccc; padding: 6px 8px; font-size: 14px; text-align: center; }
        th { background: #f4f4f4; }
        .qual-yes { background: #d4f8d4; font-weight: bold; }
        .qual-no { background: #fbe4e4; }
        .btn-refresh {
            display: inline-block;
            padding: 6px 12px;
            margin-top: 10px;
            border-radius: 4px;
            border: 1px solid #888;
            background: #fafafa;
            cursor: pointer;
        }
        .error { color: red; margin-top: 10px; }
        .note { color: #666; font-size: 13px; margin-top: 10px; }
    </style>
</head>
<body>
    <h1>RVP 2nd Half Picks</h1>
    <div class="subtitle">Date: {{.Today}}</div>

    <form method="post">
        <button class="btn-refresh" type="submit">Refresh</button>
    </form>

    {{if .Error}}
        <div class="error">{{.Error}}</div>
    {{end}}

    <div class="note">
        Showing only games in 1st Half or at Halftime.
    </div>

    <table>
        <tr>
            <th>Matchup</th>
            <th>State</th>
            <th>Period</th>
            <th>1H Score</th>
            <th>FGA</th>
            <th>FTA</th>
            <th>TO</th>
            <th>Integer<br>(FGA + FTA/2 + TO)</th>
            <th>Full-Game Total</th>
            <th>Book</th>
            <th>Derived 2H Line</th>
            <th>|Int - 2H Line|</th>
            <th>1H Score Diff</th>
            <th>Qualifies?</th>
            <th>Lean</th>
        </tr>
        {{range .Rows}}
        <tr class="{{.QualClass}}">
            <td>{{.Matchup}}</td>
            <td>{{.State}}</td>
            <td>{{.Period}}</td>
            <td>{{.HalfScore}}</td>
            <td>{{.FGA}}</td>
            <td>{{.FTA}}</td>
            <td>{{.Turnovers}}</td>
            <td>{{.Integer}}</td>
            <td>{{.FullGameTotal}}</td>
            <td>{{.Book}}</td>
            <td>{{.Derived2HLine}}</td>
            <td>{{.DiffLine}}</td>
            <td>{{.ScoreDiff}}</td>
            <td>{{.Qualifies}}</td>
            <td>{{.Lean}}</td>
        </tr>
        {{end}}
    </table>
</body>
</html>
`
